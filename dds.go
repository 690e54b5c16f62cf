// Package dds reads and writes DDS (DirectDraw Surface) texture
// containers: the legacy pixel-format header, the DX10 extension header,
// and the surface data laid out as Array(Cubemap(Mipmap(Surface))).
package dds

const (
	Magic = "DDS "

	HeaderSize      = 124 // Size of DDS_HEADER structure
	PixelFormatSize = 32  // Size of DDS_PIXELFORMAT structure
	DX10HeaderSize  = 20  // Size of DDS_HEADER_DXT10 structure

	// DDS_HEADER flags
	DCaps        = 0x1
	DHeight      = 0x2
	DWidth       = 0x4
	DPitch       = 0x8
	DPixelFormat = 0x1000
	DMipMapCount = 0x20000
	DLinearSize  = 0x80000
	DDepth       = 0x800000

	// DDS_PIXELFORMAT flags
	PFAlphaPixels = 0x1
	PFAlpha       = 0x2
	PFFourCC      = 0x4
	PFRGB         = 0x40
	PFYUV         = 0x200
	PFLuminance   = 0x20000

	// DDS_CAPS flags
	CapsComplex = 0x8
	CapsTexture = 0x1000
	CapsMipMap  = 0x400000

	// DDS_CAPS2 flags
	Caps2Cubemap     = 0x200
	Caps2CubemapPosX = 0x400
	Caps2CubemapNegX = 0x800
	Caps2CubemapPosY = 0x1000
	Caps2CubemapNegY = 0x2000
	Caps2CubemapPosZ = 0x4000
	Caps2CubemapNegZ = 0x8000
	Caps2Volume      = 0x200000

	// DDS_HEADER_DXT10 misc flag
	DX10MiscTextureCube = 0x4

	HeaderFlagsTexture = DCaps | DHeight | DWidth | DPixelFormat

	knownHeaderFlags = HeaderFlagsTexture | DPitch | DMipMapCount | DLinearSize | DDepth
	knownPFFlags     = PFAlphaPixels | PFAlpha | PFFourCC | PFRGB | PFYUV | PFLuminance
	knownCapsFlags   = CapsComplex | CapsTexture | CapsMipMap
	knownCaps2Flags  = Caps2Cubemap | Caps2CubemapPosX | Caps2CubemapNegX |
		Caps2CubemapPosY | Caps2CubemapNegY | Caps2CubemapPosZ | Caps2CubemapNegZ |
		Caps2Volume
)

// pixelFormatRecord is the on-disk DDS_PIXELFORMAT structure (without the
// leading size constant). Masks hold [r, g, b, a].
type pixelFormatRecord struct {
	Flags    uint32
	FourCC   FourCC
	BitCount uint32
	Masks    [4]uint32
}

// headerRecord is the on-disk DDS_HEADER structure (without the leading
// magic and size constant), plus the optional DX10 extension.
type headerRecord struct {
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       pixelFormatRecord
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
	DX10              *dx10Record
}

// dx10Record is the on-disk DDS_HEADER_DXT10 structure.
type dx10Record struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}
