package dds

import (
	"errors"
	"fmt"
	"slices"

	"github.com/woozymasta/dds/texture"
)

// Header is the normalized DDS header: the redundant on-disk flag/value
// pairs are collapsed into plain counts and face lists. A header is either
// legacy (format described by PixelFormat) or DX10 (format described by a
// DXGI code); IsDX10 discriminates.
type Header struct {
	dims  texture.Dimensions
	mips  int // 0 = no mipmaps
	faces []texture.CubeFace

	pixelFormat PixelFormat

	dx10       bool
	dxgiFormat DXGIFormat
	layers     int // 0 = no array
	cubemap    bool
	alphaMode  AlphaMode
}

// NewLegacyHeader builds a legacy header. faces may be nil for
// non-cubemaps; partial face sets are allowed and are stored in canonical
// order.
func NewLegacyHeader(dims texture.Dimensions, mips int, faces []texture.CubeFace, pf PixelFormat) *Header {
	if faces != nil {
		faces = slices.Clone(faces)
		slices.Sort(faces)
	}
	return &Header{dims: dims, mips: mips, faces: faces, pixelFormat: pf}
}

// NewDX10Header builds a DX10 header. layers of 0 or 1 mean no array;
// DX10 cubemaps always carry all six faces.
func NewDX10Header(dims texture.Dimensions, mips, layers int, cubemap bool, format DXGIFormat, alpha AlphaMode) *Header {
	if layers <= 1 {
		layers = 0
	}
	return &Header{
		dims:        dims,
		mips:        mips,
		pixelFormat: FourCCFormat(FourCCDX10),
		dx10:        true,
		dxgiFormat:  format,
		layers:      layers,
		cubemap:     cubemap,
		alphaMode:   alpha,
	}
}

// IsDX10 reports whether the header carries a DX10 extension.
func (h *Header) IsDX10() bool { return h.dx10 }

// PixelFormat returns the legacy pixel format descriptor. For DX10
// headers this is the DX10 sentinel tag.
func (h *Header) PixelFormat() PixelFormat { return h.pixelFormat }

// DXGIFormat returns the DX10 format code, or DXGIFormatUnknown for
// legacy headers.
func (h *Header) DXGIFormat() DXGIFormat {
	if !h.dx10 {
		return DXGIFormatUnknown
	}
	return h.dxgiFormat
}

// AlphaMode returns the DX10 alpha interpretation.
func (h *Header) AlphaMode() AlphaMode {
	if !h.dx10 {
		return AlphaModeUnknown
	}
	return h.alphaMode
}

// Dimensions returns the dimensions of the largest surface.
func (h *Header) Dimensions() texture.Dimensions { return h.dims }

// MipCount returns the mip level count, or 0 without mipmaps.
func (h *Header) MipCount() int { return h.mips }

// LayerCount returns the array layer count, or 0 without an array.
func (h *Header) LayerCount() int {
	if !h.dx10 {
		return 0
	}
	return h.layers
}

// Faces returns the cubemap faces in canonical order, or nil. DX10
// cubemaps are always complete.
func (h *Header) Faces() []texture.CubeFace {
	if h.dx10 {
		if h.cubemap {
			return texture.AllCubeFaces()
		}
		return nil
	}
	return h.faces
}

// Format returns the semantic format the surface data is encoded in.
func (h *Header) Format() (texture.Format, error) {
	if h.dx10 {
		return dxgiToFormat(h.dxgiFormat, h.alphaMode)
	}
	return h.pixelFormat.Format()
}

var caps2FaceBits = [6]uint32{
	Caps2CubemapPosX, Caps2CubemapNegX,
	Caps2CubemapPosY, Caps2CubemapNegY,
	Caps2CubemapPosZ, Caps2CubemapNegZ,
}

// headerFromRecord normalizes the on-disk record. Mipmaps count as
// present when the MipmapCount flag is set or the count exceeds 1; some
// writers set one without the other.
func headerFromRecord(rec *headerRecord) (*Header, error) {
	mips := 0
	if rec.Flags&DMipMapCount != 0 || rec.MipMapCount > 1 {
		mips = int(rec.MipMapCount)
	}

	if rec.DX10 != nil {
		var dims texture.Dimensions
		var err error
		switch Dimensionality(rec.DX10.ResourceDimension) {
		case Texture1D:
			dims, err = texture.New(rec.Width)
		case Texture2D:
			dims, err = texture.New(rec.Width, rec.Height)
		case Texture3D:
			dims, err = texture.New(rec.Width, rec.Height, rec.Depth)
		default:
			return nil, &texture.HeaderError{
				Msg: fmt.Sprintf("invalid DX10 resource dimension %d", rec.DX10.ResourceDimension),
			}
		}
		if err != nil {
			return nil, err
		}
		if !knownDXGIFormat(rec.DX10.DXGIFormat) {
			return nil, &texture.HeaderError{
				Msg: fmt.Sprintf("invalid DXGI format value %d", rec.DX10.DXGIFormat),
			}
		}
		if rec.DX10.MiscFlags2 > uint32(AlphaModeCustom) {
			return nil, &texture.HeaderError{
				Msg: fmt.Sprintf("invalid DX10 alpha mode %d", rec.DX10.MiscFlags2),
			}
		}

		return NewDX10Header(
			dims, mips,
			int(rec.DX10.ArraySize),
			rec.DX10.MiscFlag&DX10MiscTextureCube != 0,
			DXGIFormat(rec.DX10.DXGIFormat),
			AlphaMode(rec.DX10.MiscFlags2),
		), nil
	}

	var dims texture.Dimensions
	var err error
	if rec.Flags&DDepth != 0 {
		dims, err = texture.New(rec.Width, rec.Height, rec.Depth)
	} else {
		dims, err = texture.New(rec.Width, rec.Height)
	}
	if err != nil {
		return nil, err
	}

	var faces []texture.CubeFace
	if rec.Caps2&Caps2Cubemap != 0 {
		faces = make([]texture.CubeFace, 0, 6)
		for i, bit := range caps2FaceBits {
			if rec.Caps2&bit != 0 {
				faces = append(faces, texture.CubeFace(i))
			}
		}
	}

	return &Header{
		dims:        dims,
		mips:        mips,
		faces:       faces,
		pixelFormat: pixelFormatFromRecord(rec.PixelFormat),
	}, nil
}

// record denormalizes the header back to its on-disk form, re-deriving
// the flag and caps sets.
func (h *Header) record() (*headerRecord, error) {
	rec := &headerRecord{
		Flags:  HeaderFlagsTexture,
		Height: h.dims.Height(),
		Width:  h.dims.Width(),
		Caps:   CapsTexture,
	}

	if h.dims.Len() == 3 {
		rec.Flags |= DDepth
		rec.Depth = h.dims.Depth()
	}

	if h.mips > 0 {
		rec.Flags |= DMipMapCount
		rec.Caps |= CapsComplex | CapsMipMap
		rec.MipMapCount = uint32(h.mips)
	}

	if h.dx10 {
		if h.cubemap {
			rec.Caps |= CapsComplex
			rec.Caps2 |= Caps2Cubemap
			for _, bit := range caps2FaceBits {
				rec.Caps2 |= bit
			}
		}
		if h.layers > 0 {
			rec.Caps |= CapsComplex
		}
		misc := uint32(0)
		if h.cubemap {
			misc = DX10MiscTextureCube
		}
		arraySize := uint32(1)
		if h.layers > 0 {
			arraySize = uint32(h.layers)
		}
		dimensionality := Texture2D
		switch h.dims.Len() {
		case 1:
			dimensionality = Texture1D
		case 3:
			dimensionality = Texture3D
		}
		rec.DX10 = &dx10Record{
			DXGIFormat:        uint32(h.dxgiFormat),
			ResourceDimension: uint32(dimensionality),
			MiscFlag:          misc,
			ArraySize:         arraySize,
			MiscFlags2:        uint32(h.alphaMode),
		}
	} else if h.faces != nil {
		rec.Caps |= CapsComplex
		rec.Caps2 |= Caps2Cubemap
		for _, f := range h.faces {
			rec.Caps2 |= caps2FaceBits[f]
		}
	}

	rec.PixelFormat = h.pixelFormat.record()

	format, err := h.Format()
	switch {
	case err == nil && format.Kind == texture.FormatUncompressed:
		rec.Flags |= DPitch
		rec.PitchOrLinearSize = format.Pitch * h.dims.Width()
	case err == nil:
		rec.Flags |= DLinearSize
		rec.PitchOrLinearSize = uint32(format.SizeFor(h.dims))
	default:
		// unknown format: leave the field zero with neither flag
		var fe *texture.FormatError
		if !errors.As(err, &fe) {
			return nil, err
		}
	}

	return rec, nil
}

// Mode selects how FromTextureArgs chooses between the legacy and DX10
// header encodings.
type Mode uint8

const (
	// PreferLegacy tries a legacy header and falls back to DX10 when the
	// texture's structure or format cannot be expressed.
	PreferLegacy Mode = iota
	// ForceLegacy builds a legacy header or fails.
	ForceLegacy
	// ForceDX10 always builds a DX10 header.
	ForceDX10
)

// Args configures header construction for WriteTextureArgs.
type Args struct {
	Mode Mode
}

// FromTexture builds a header for the texture with default arguments.
func FromTexture(t texture.Texture) (*Header, error) {
	return FromTextureArgs(t, Args{})
}

// FromTextureArgs builds a header for the texture. In PreferLegacy mode
// capability and format errors from the legacy attempt fall through to
// DX10; any other error is fatal.
func FromTextureArgs(t texture.Texture, args Args) (*Header, error) {
	if args.Mode != ForceDX10 {
		h, err := legacyHeaderFor(t)
		if err == nil {
			return h, nil
		}
		if args.Mode == ForceLegacy {
			return nil, err
		}
		var fe *texture.FormatError
		var ce *texture.CapabilityError
		if !errors.As(err, &fe) && !errors.As(err, &ce) {
			return nil, err
		}
	}
	return dx10HeaderFor(t)
}

func legacyHeaderFor(t texture.Texture) (*Header, error) {
	if t.LayerCount() > 0 {
		return nil, &texture.CapabilityError{
			Msg: "texture arrays are not supported by legacy DDS headers",
		}
	}
	pf, err := PixelFormatFromFormat(t.Format())
	if err != nil {
		return nil, err
	}
	return NewLegacyHeader(t.Dimensions(), t.MipCount(), t.Faces(), pf), nil
}

func dx10HeaderFor(t texture.Texture) (*Header, error) {
	cubemap := false
	if faces := t.Faces(); faces != nil {
		if len(faces) != 6 {
			return nil, &texture.CapabilityError{
				Msg: "incomplete cubemaps are not supported by DX10 DDS headers",
			}
		}
		cubemap = true
	}
	dxgi, alpha, err := dxgiFromFormat(t.Format())
	if err != nil {
		return nil, err
	}
	return NewDX10Header(t.Dimensions(), t.MipCount(), t.LayerCount(), cubemap, dxgi, alpha), nil
}
