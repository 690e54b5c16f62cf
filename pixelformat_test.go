package dds

import (
	"errors"
	"testing"

	"github.com/woozymasta/dds/texture"
)

func rgbFormat(r, g, b uint32) texture.ColorFormat {
	return texture.ColorFormat{Model: texture.ColorRGB, Masks: [3]uint32{r, g, b}}
}

func TestPixelFormatRecordRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pf   PixelFormat
	}{
		{name: "dxt1", pf: FourCCFormat(FourCCDXT1)},
		{name: "dx10", pf: FourCCFormat(FourCCDX10)},
		{
			name: "bgra8",
			pf: UncompressedFormat(32, rgbFormat(0xFF0000, 0xFF00, 0xFF),
				texture.AlphaFormat{Kind: texture.AlphaCustom, Mask: 0xFF000000}),
		},
		{
			name: "rgb8",
			pf: UncompressedFormat(24, rgbFormat(0xFF, 0xFF00, 0xFF0000),
				texture.AlphaFormat{Kind: texture.AlphaOpaque}),
		},
		{
			name: "luminance",
			pf: UncompressedFormat(8,
				texture.ColorFormat{Model: texture.ColorLuminance, Masks: [3]uint32{0xFF, 0, 0}},
				texture.AlphaFormat{Kind: texture.AlphaOpaque}),
		},
		{
			name: "alpha-only",
			pf: UncompressedFormat(8,
				texture.ColorFormat{Model: texture.ColorNone},
				texture.AlphaFormat{Kind: texture.AlphaCustom, Mask: 0xFF}),
		},
		{
			name: "yuv",
			pf: UncompressedFormat(24,
				texture.ColorFormat{Model: texture.ColorYUV, Masks: [3]uint32{0xFF, 0xFF00, 0xFF0000}},
				texture.AlphaFormat{Kind: texture.AlphaOpaque}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := pixelFormatFromRecord(tc.pf.record())
			if got != tc.pf {
				t.Fatalf("round trip = %+v, want %+v", got, tc.pf)
			}
		})
	}
}

func TestPixelFormatDecodeRules(t *testing.T) {
	t.Parallel()

	t.Run("fourcc-wins", func(t *testing.T) {
		t.Parallel()
		// color flags and masks are ignored once FourCC is set
		rec := pixelFormatRecord{
			Flags:    PFFourCC | PFRGB | PFAlphaPixels,
			FourCC:   FourCCDXT5,
			BitCount: 32,
			Masks:    [4]uint32{1, 2, 3, 4},
		}
		pf := pixelFormatFromRecord(rec)
		fc, ok := pf.FourCC()
		if !ok || fc != FourCCDXT5 {
			t.Fatalf("FourCC() = %v, %v", fc, ok)
		}
	})

	t.Run("alpha-flag-variant", func(t *testing.T) {
		t.Parallel()
		// PFAlpha and PFAlphaPixels are equivalent on read
		rec := pixelFormatRecord{Flags: PFAlpha, BitCount: 8, Masks: [4]uint32{0, 0, 0, 0xFF}}
		pf := pixelFormatFromRecord(rec)
		if pf.Alpha().Kind != texture.AlphaCustom || pf.Alpha().Mask != 0xFF {
			t.Fatalf("Alpha() = %+v", pf.Alpha())
		}
		if pf.Color().Model != texture.ColorNone {
			t.Fatalf("Color() = %+v", pf.Color())
		}
	})
}

func TestPixelFormatToFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pf   PixelFormat
		want texture.Format
	}{
		{name: "dxt1", pf: FourCCFormat(FourCCDXT1), want: texture.BC1(false)},
		{name: "dxt3", pf: FourCCFormat(FourCCDXT3), want: texture.BC2(false)},
		{name: "dxt5", pf: FourCCFormat(FourCCDXT5), want: texture.BC3(false)},
		{name: "bc4u", pf: FourCCFormat(FourCCBC4U), want: texture.BC4(false)},
		{name: "bc4s", pf: FourCCFormat(FourCCBC4S), want: texture.BC4(true)},
		{name: "ati2", pf: FourCCFormat(FourCCATI2), want: texture.BC5(false)},
		{name: "bc5u", pf: FourCCFormat(FourCCBC5U), want: texture.BC5(false)},
		{name: "bc5s", pf: FourCCFormat(FourCCBC5S), want: texture.BC5(true)},
		{
			name: "rgb8",
			pf: UncompressedFormat(24, rgbFormat(0xFF, 0xFF00, 0xFF0000),
				texture.AlphaFormat{Kind: texture.AlphaOpaque}),
			want: texture.Uncompressed(3, rgbFormat(0xFF, 0xFF00, 0xFF0000),
				texture.AlphaFormat{Kind: texture.AlphaOpaque}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.pf.Format()
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPixelFormatToFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pf   PixelFormat
	}{
		{name: "dx10-tag", pf: FourCCFormat(FourCCDX10)},
		{name: "unknown-fourcc", pf: FourCCFormat(FourCC{'X', 'Y', 'Z', 'W'})},
		{
			name: "unaligned-bits",
			pf: UncompressedFormat(15, rgbFormat(0x7C00, 0x3E0, 0x1F),
				texture.AlphaFormat{Kind: texture.AlphaOpaque}),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.pf.Format()
			var fe *texture.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v, want *texture.FormatError", err)
			}
		})
	}
}

func TestPixelFormatFromFormat(t *testing.T) {
	t.Parallel()

	t.Run("canonical-fourcc", func(t *testing.T) {
		t.Parallel()
		pf, err := PixelFormatFromFormat(texture.BC5(false))
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		fc, _ := pf.FourCC()
		if fc != FourCCATI2 {
			t.Fatalf("BC5 FourCC = %s, want ATI2", fc)
		}
	})

	t.Run("uncompressed-round-trip", func(t *testing.T) {
		t.Parallel()
		f := texture.Uncompressed(4, rgbFormat(0xFF0000, 0xFF00, 0xFF),
			texture.AlphaFormat{Kind: texture.AlphaCustom, Mask: 0xFF000000})
		pf, err := PixelFormatFromFormat(f)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		got, err := pf.Format()
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != f {
			t.Fatalf("round trip = %+v, want %+v", got, f)
		}
	})

	t.Run("srgb-has-no-legacy-form", func(t *testing.T) {
		t.Parallel()
		_, err := PixelFormatFromFormat(texture.BC1(true))
		var fe *texture.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("error = %v, want *texture.FormatError", err)
		}
	})
}

func TestIsDX10(t *testing.T) {
	t.Parallel()

	if !FourCCFormat(FourCCDX10).IsDX10() {
		t.Fatal("DX10 tag not detected")
	}
	if FourCCFormat(FourCCDXT1).IsDX10() {
		t.Fatal("DXT1 misdetected as DX10")
	}
	if UncompressedFormat(32, rgbFormat(1, 2, 3), texture.AlphaFormat{}).IsDX10() {
		t.Fatal("uncompressed misdetected as DX10")
	}
}
