package texture

// ColorModel discriminates the color channel layout of an uncompressed
// format.
type ColorModel uint8

const (
	// ColorNone means no color information, e.g. an alpha-only format.
	ColorNone ColorModel = iota
	// ColorRGB means masked red, green, and blue channels.
	ColorRGB
	// ColorYUV means masked luma and chroma channels.
	ColorYUV
	// ColorLuminance means a single masked luminance channel.
	ColorLuminance
)

// ColorFormat describes the color channels of an uncompressed format.
// Masks hold [r, g, b], [y, u, v], or [l, 0, 0] depending on Model.
type ColorFormat struct {
	Model ColorModel
	Masks [3]uint32
	SRGB  bool
}

// AlphaKind discriminates how an alpha channel is interpreted.
type AlphaKind uint8

const (
	// AlphaOpaque means any alpha content is fully opaque.
	AlphaOpaque AlphaKind = iota
	// AlphaCustom means the alpha channel carries arbitrary fourth-channel
	// data, not transparency. The default for unknown alpha content.
	AlphaCustom
	// AlphaStraight means straight (non-premultiplied) alpha.
	AlphaStraight
	// AlphaPremultiplied means premultiplied alpha.
	AlphaPremultiplied
)

// AlphaFormat describes the alpha channel of an uncompressed format.
type AlphaFormat struct {
	Kind AlphaKind
	Mask uint32
}

// FormatKind discriminates texture formats.
type FormatKind uint8

const (
	FormatUnknown FormatKind = iota
	FormatBC1
	FormatBC2
	FormatBC3
	FormatBC4
	FormatBC5
	FormatUncompressed
)

// Format is a semantic texture format: one of the BC1-BC5 block
// compressions or an uncompressed channel layout. Pitch, Color, and Alpha
// are meaningful only for FormatUncompressed; SRGB only for BC1-BC3;
// Signed only for BC4 and BC5.
type Format struct {
	Kind   FormatKind
	SRGB   bool
	Signed bool
	Pitch  uint32
	Color  ColorFormat
	Alpha  AlphaFormat
}

// BC1 returns the BC1 (DXT1) format.
func BC1(srgb bool) Format { return Format{Kind: FormatBC1, SRGB: srgb} }

// BC2 returns the BC2 (DXT3) format.
func BC2(srgb bool) Format { return Format{Kind: FormatBC2, SRGB: srgb} }

// BC3 returns the BC3 (DXT5) format.
func BC3(srgb bool) Format { return Format{Kind: FormatBC3, SRGB: srgb} }

// BC4 returns the single-channel BC4 format.
func BC4(signed bool) Format { return Format{Kind: FormatBC4, Signed: signed} }

// BC5 returns the two-channel BC5 format.
func BC5(signed bool) Format { return Format{Kind: FormatBC5, Signed: signed} }

// Uncompressed returns an uncompressed format with the given bytes per
// pixel and channel layouts.
func Uncompressed(pitch uint32, color ColorFormat, alpha AlphaFormat) Format {
	return Format{Kind: FormatUncompressed, Pitch: pitch, Color: color, Alpha: alpha}
}

// compressionBlock is the 4x4 texel block all BCn formats operate on.
var compressionBlock = Dimensions{n: 2, v: [3]uint32{4, 4, 0}}

// SizeFor returns the byte size of one surface with the given dimensions,
// or -1 for FormatUnknown.
func (f Format) SizeFor(d Dimensions) int {
	switch f.Kind {
	case FormatBC1, FormatBC4:
		return 8 * d.Blocks(compressionBlock).Product()
	case FormatBC2, FormatBC3, FormatBC5:
		return 16 * d.Blocks(compressionBlock).Product()
	case FormatUncompressed:
		return int(f.Pitch) * d.Product()
	}
	return -1
}

func (f Format) String() string {
	var s string
	switch f.Kind {
	case FormatBC1:
		s = "BC1"
	case FormatBC2:
		s = "BC2"
	case FormatBC3:
		s = "BC3"
	case FormatBC4:
		s = "BC4"
	case FormatBC5:
		s = "BC5"
	case FormatUncompressed:
		return "uncompressed"
	default:
		return "unknown"
	}
	if f.SRGB {
		return s + " (sRGB)"
	}
	if f.Signed {
		return s + " (signed)"
	}
	return s
}
