package dds

import (
	"fmt"

	"github.com/woozymasta/dds/texture"
)

// FourCC is the four-byte format identifier used by legacy DDS headers.
type FourCC [4]byte

// Canonical FourCC codes for the formats this package understands.
var (
	FourCCDXT1 = FourCC{'D', 'X', 'T', '1'}
	FourCCDXT3 = FourCC{'D', 'X', 'T', '3'}
	FourCCDXT5 = FourCC{'D', 'X', 'T', '5'}
	FourCCBC4U = FourCC{'B', 'C', '4', 'U'}
	FourCCBC4S = FourCC{'B', 'C', '4', 'S'}
	FourCCATI2 = FourCC{'A', 'T', 'I', '2'}
	FourCCBC5U = FourCC{'B', 'C', '5', 'U'}
	FourCCBC5S = FourCC{'B', 'C', '5', 'S'}
	FourCCDX10 = FourCC{'D', 'X', '1', '0'}
)

func (f FourCC) String() string { return string(f[:]) }

// uint32 returns the little-endian numeric form of the code.
func (f FourCC) uint32() uint32 {
	return uint32(f[0]) | uint32(f[1])<<8 | uint32(f[2])<<16 | uint32(f[3])<<24
}

func fourCCFromUint32(v uint32) FourCC {
	return FourCC{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// PixelFormat is the decoded legacy pixel format descriptor: either an
// opaque FourCC tag or an uncompressed bitmask layout.
type PixelFormat struct {
	isFourCC bool
	fourCC   FourCC
	bitCount uint32
	color    texture.ColorFormat
	alpha    texture.AlphaFormat
}

// FourCCFormat returns a pixel format carrying only a FourCC tag.
func FourCCFormat(fc FourCC) PixelFormat {
	return PixelFormat{isFourCC: true, fourCC: fc}
}

// UncompressedFormat returns an uncompressed pixel format with the given
// per-pixel bit count and channel layouts.
func UncompressedFormat(bitCount uint32, color texture.ColorFormat, alpha texture.AlphaFormat) PixelFormat {
	return PixelFormat{bitCount: bitCount, color: color, alpha: alpha}
}

// IsFourCC reports whether the format is a FourCC tag.
func (p PixelFormat) IsFourCC() bool { return p.isFourCC }

// FourCC returns the tag of a FourCC pixel format.
func (p PixelFormat) FourCC() (FourCC, bool) { return p.fourCC, p.isFourCC }

// IsDX10 reports whether the format is the DX10 sentinel tag, meaning the
// actual format lives in the DX10 extension header.
func (p PixelFormat) IsDX10() bool { return p.isFourCC && p.fourCC == FourCCDX10 }

// BitCount returns the per-pixel bit count of an uncompressed format.
func (p PixelFormat) BitCount() uint32 { return p.bitCount }

// Color returns the color layout of an uncompressed format.
func (p PixelFormat) Color() texture.ColorFormat { return p.color }

// Alpha returns the alpha layout of an uncompressed format.
func (p PixelFormat) Alpha() texture.AlphaFormat { return p.alpha }

// pixelFormatFromRecord decodes the on-disk descriptor. When the FourCC
// flag is set the remaining fields are ignored; otherwise the color model
// is chosen by the first matching flag in order RGB, YUV, Luminance, None,
// and any alpha flag maps to a custom alpha channel.
func pixelFormatFromRecord(rec pixelFormatRecord) PixelFormat {
	if rec.Flags&PFFourCC != 0 {
		return FourCCFormat(rec.FourCC)
	}

	var color texture.ColorFormat
	switch {
	case rec.Flags&PFRGB != 0:
		color = texture.ColorFormat{
			Model: texture.ColorRGB,
			Masks: [3]uint32{rec.Masks[0], rec.Masks[1], rec.Masks[2]},
		}
	case rec.Flags&PFYUV != 0:
		color = texture.ColorFormat{
			Model: texture.ColorYUV,
			Masks: [3]uint32{rec.Masks[0], rec.Masks[1], rec.Masks[2]},
		}
	case rec.Flags&PFLuminance != 0:
		color = texture.ColorFormat{
			Model: texture.ColorLuminance,
			Masks: [3]uint32{rec.Masks[0], 0, 0},
		}
	default:
		color = texture.ColorFormat{Model: texture.ColorNone}
	}

	alpha := texture.AlphaFormat{Kind: texture.AlphaOpaque}
	if rec.Flags&(PFAlpha|PFAlphaPixels) != 0 {
		alpha = texture.AlphaFormat{Kind: texture.AlphaCustom, Mask: rec.Masks[3]}
	}

	return UncompressedFormat(rec.BitCount, color, alpha)
}

// record encodes the descriptor back to its on-disk form. A FourCC format
// sets only the FourCC flag and zeroes the mask fields; non-opaque alpha
// is encoded with the AlphaPixels flag.
func (p PixelFormat) record() pixelFormatRecord {
	if p.isFourCC {
		return pixelFormatRecord{Flags: PFFourCC, FourCC: p.fourCC}
	}

	rec := pixelFormatRecord{BitCount: p.bitCount}
	switch p.color.Model {
	case texture.ColorRGB:
		rec.Flags |= PFRGB
		rec.Masks[0], rec.Masks[1], rec.Masks[2] = p.color.Masks[0], p.color.Masks[1], p.color.Masks[2]
	case texture.ColorYUV:
		rec.Flags |= PFYUV
		rec.Masks[0], rec.Masks[1], rec.Masks[2] = p.color.Masks[0], p.color.Masks[1], p.color.Masks[2]
	case texture.ColorLuminance:
		rec.Flags |= PFLuminance
		rec.Masks[0] = p.color.Masks[0]
	case texture.ColorNone:
	}
	if p.alpha.Kind != texture.AlphaOpaque {
		rec.Flags |= PFAlphaPixels
		rec.Masks[3] = p.alpha.Mask
	}
	return rec
}

// Format translates the pixel format to a semantic texture format. The
// DX10 sentinel tag cannot be translated without the extension header.
func (p PixelFormat) Format() (texture.Format, error) {
	if p.isFourCC {
		switch p.fourCC {
		case FourCCDXT1:
			return texture.BC1(false), nil
		case FourCCDXT3:
			return texture.BC2(false), nil
		case FourCCDXT5:
			return texture.BC3(false), nil
		case FourCCBC4U:
			return texture.BC4(false), nil
		case FourCCBC4S:
			return texture.BC4(true), nil
		case FourCCATI2, FourCCBC5U:
			return texture.BC5(false), nil
		case FourCCBC5S:
			return texture.BC5(true), nil
		case FourCCDX10:
			return texture.Format{}, &texture.FormatError{
				Msg: "cannot convert the DX10 tag without a DX10 header",
			}
		}
		return texture.Format{}, &texture.FormatError{
			Msg: fmt.Sprintf("unknown FourCC code %q", p.fourCC.String()),
		}
	}

	if p.bitCount%8 != 0 {
		return texture.Format{}, &texture.FormatError{
			Msg: fmt.Sprintf("bit count %d is not byte-aligned", p.bitCount),
		}
	}
	return texture.Uncompressed(p.bitCount/8, p.color, p.alpha), nil
}

// PixelFormatFromFormat translates a semantic format back to a legacy
// pixel format, picking the canonical FourCC for each compressed case.
// sRGB formats have no legacy encoding.
func PixelFormatFromFormat(f texture.Format) (PixelFormat, error) {
	switch f.Kind {
	case texture.FormatBC1, texture.FormatBC2, texture.FormatBC3:
		if f.SRGB {
			return PixelFormat{}, &texture.FormatError{
				Msg: "legacy pixel formats cannot express sRGB",
			}
		}
		switch f.Kind {
		case texture.FormatBC1:
			return FourCCFormat(FourCCDXT1), nil
		case texture.FormatBC2:
			return FourCCFormat(FourCCDXT3), nil
		default:
			return FourCCFormat(FourCCDXT5), nil
		}
	case texture.FormatBC4:
		if f.Signed {
			return FourCCFormat(FourCCBC4S), nil
		}
		return FourCCFormat(FourCCBC4U), nil
	case texture.FormatBC5:
		if f.Signed {
			return FourCCFormat(FourCCBC5S), nil
		}
		return FourCCFormat(FourCCATI2), nil
	case texture.FormatUncompressed:
		if f.Color.SRGB {
			return PixelFormat{}, &texture.FormatError{
				Msg: "legacy pixel formats cannot express sRGB",
			}
		}
		return UncompressedFormat(f.Pitch*8, f.Color, f.Alpha), nil
	}
	return PixelFormat{}, &texture.FormatError{Msg: "unknown format"}
}
