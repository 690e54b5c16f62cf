package dds

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/woozymasta/dds/texture"
)

// rawDDS assembles on-disk header bytes for tests.
type rawDDS struct {
	flags, height, width, pitch, depth, mips uint32
	pfFlags, fourCC, bitCount                uint32
	masks                                    [4]uint32
	caps, caps2                              uint32
	dx10                                     []uint32 // 5 dwords when present
	payload                                  []byte
}

func putDW(buf *bytes.Buffer, vs ...uint32) {
	for _, v := range vs {
		buf.WriteByte(byte(v))
		buf.WriteByte(byte(v >> 8))
		buf.WriteByte(byte(v >> 16))
		buf.WriteByte(byte(v >> 24))
	}
}

func (r rawDDS) bytes() []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(Magic)
	putDW(buf, HeaderSize, r.flags, r.height, r.width, r.pitch, r.depth, r.mips)
	for i := 0; i < 11; i++ {
		putDW(buf, 0)
	}
	putDW(buf, PixelFormatSize, r.pfFlags, r.fourCC, r.bitCount)
	putDW(buf, r.masks[0], r.masks[1], r.masks[2], r.masks[3])
	putDW(buf, r.caps, r.caps2, 0, 0, 0)
	putDW(buf, r.dx10...)
	buf.Write(r.payload)
	return buf.Bytes()
}

const allCubeFaceBits = Caps2Cubemap | Caps2CubemapPosX | Caps2CubemapNegX |
	Caps2CubemapPosY | Caps2CubemapNegY | Caps2CubemapPosZ | Caps2CubemapNegZ

// legacyCubemapRGB is seed scenario 1: 128x128 RGB8 cubemap, no mips.
func legacyCubemapRGB(payload []byte) rawDDS {
	return rawDDS{
		flags:    HeaderFlagsTexture | DPitch,
		height:   128,
		width:    128,
		pitch:    128 * 3,
		pfFlags:  PFRGB,
		bitCount: 24,
		masks:    [4]uint32{0xFF, 0xFF00, 0xFF0000, 0},
		caps:     CapsTexture | CapsComplex,
		caps2:    allCubeFaceBits,
		payload:  payload,
	}
}

func TestDecodeHeaderLegacyCubemap(t *testing.T) {
	t.Parallel()

	h, err := DecodeHeader(bytes.NewReader(legacyCubemapRGB(nil).bytes()))
	if err != nil {
		t.Fatalf("DecodeHeader error = %v", err)
	}

	if h.IsDX10() {
		t.Fatal("legacy header detected as DX10")
	}
	if got := h.Dimensions(); got.Width() != 128 || got.Height() != 128 || got.Len() != 2 {
		t.Fatalf("Dimensions() = %v", got)
	}
	if h.MipCount() != 0 {
		t.Fatalf("MipCount() = %d, want 0", h.MipCount())
	}
	if h.LayerCount() != 0 {
		t.Fatalf("LayerCount() = %d, want 0", h.LayerCount())
	}
	if got := h.Faces(); !slices.Equal(got, texture.AllCubeFaces()) {
		t.Fatalf("Faces() = %v", got)
	}

	format, err := h.Format()
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := texture.Uncompressed(3, rgbFormat(0xFF, 0xFF00, 0xFF0000),
		texture.AlphaFormat{Kind: texture.AlphaOpaque})
	if format != want {
		t.Fatalf("Format() = %+v, want %+v", format, want)
	}
}

func TestDecodeHeaderPartialCubemap(t *testing.T) {
	t.Parallel()

	raw := legacyCubemapRGB(nil)
	raw.caps2 = Caps2Cubemap | Caps2CubemapPosX | Caps2CubemapNegZ

	h, err := DecodeHeader(bytes.NewReader(raw.bytes()))
	if err != nil {
		t.Fatalf("DecodeHeader error = %v", err)
	}
	want := []texture.CubeFace{texture.PositiveX, texture.NegativeZ}
	if got := h.Faces(); !slices.Equal(got, want) {
		t.Fatalf("Faces() = %v, want %v", got, want)
	}
}

func TestDecodeHeaderMipLeniency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags uint32
		count uint32
		want  int
	}{
		{name: "flag-and-count", flags: HeaderFlagsTexture | DMipMapCount, count: 5, want: 5},
		// some writers set the count without the flag
		{name: "count-only", flags: HeaderFlagsTexture, count: 5, want: 5},
		{name: "count-one-no-flag", flags: HeaderFlagsTexture, count: 1, want: 0},
		// a zero count with the flag set means no mips
		{name: "flag-zero-count", flags: HeaderFlagsTexture | DMipMapCount, count: 0, want: 0},
		{name: "flag-count-one", flags: HeaderFlagsTexture | DMipMapCount, count: 1, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw := rawDDS{
				flags:    tc.flags,
				height:   16,
				width:    16,
				mips:     tc.count,
				pfFlags:  PFFourCC,
				fourCC:   FourCCDXT1.uint32(),
				caps:     CapsTexture,
				bitCount: 0,
			}
			h, err := DecodeHeader(bytes.NewReader(raw.bytes()))
			if err != nil {
				t.Fatalf("DecodeHeader error = %v", err)
			}
			if h.MipCount() != tc.want {
				t.Fatalf("MipCount() = %d, want %d", h.MipCount(), tc.want)
			}
		})
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	t.Parallel()

	good := legacyCubemapRGB(nil).bytes()

	t.Run("bad-magic", func(t *testing.T) {
		t.Parallel()
		b := slices.Clone(good)
		b[0] = 'X'
		_, err := DecodeHeader(bytes.NewReader(b))
		wantHeaderErr(t, err)
	})

	t.Run("bad-size", func(t *testing.T) {
		t.Parallel()
		b := slices.Clone(good)
		b[4] = 123
		_, err := DecodeHeader(bytes.NewReader(b))
		wantHeaderErr(t, err)
	})

	t.Run("unknown-flag-bits", func(t *testing.T) {
		t.Parallel()
		raw := legacyCubemapRGB(nil)
		raw.flags |= 0x40000000
		_, err := DecodeHeader(bytes.NewReader(raw.bytes()))
		wantHeaderErr(t, err)
	})

	t.Run("missing-required-flags", func(t *testing.T) {
		t.Parallel()
		raw := legacyCubemapRGB(nil)
		raw.flags = DCaps
		_, err := DecodeHeader(bytes.NewReader(raw.bytes()))
		wantHeaderErr(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeHeader(bytes.NewReader(good[:40]))
		wantHeaderErr(t, err)
	})

	t.Run("dx10-bad-dimensionality", func(t *testing.T) {
		t.Parallel()
		raw := dx10CubeArray(nil)
		raw.dx10[1] = 7
		_, err := DecodeHeader(bytes.NewReader(raw.bytes()))
		wantHeaderErr(t, err)
	})

	t.Run("dx10-invalid-dxgi-value", func(t *testing.T) {
		t.Parallel()
		raw := dx10CubeArray(nil)
		raw.dx10[0] = 999
		_, err := DecodeHeader(bytes.NewReader(raw.bytes()))
		wantHeaderErr(t, err)
	})
}

func wantHeaderErr(t *testing.T, err error) {
	t.Helper()
	var he *texture.HeaderError
	if !errors.As(err, &he) {
		t.Fatalf("error = %v, want *texture.HeaderError", err)
	}
}

// dx10CubeArray is seed scenario 5: 64x64 BC3 cubemap array of 4 layers
// with 3 mips.
func dx10CubeArray(payload []byte) rawDDS {
	return rawDDS{
		flags:   HeaderFlagsTexture | DMipMapCount | DLinearSize,
		height:  64,
		width:   64,
		pitch:   4096,
		mips:    3,
		pfFlags: PFFourCC,
		fourCC:  FourCCDX10.uint32(),
		caps:    CapsTexture | CapsComplex | CapsMipMap,
		caps2:   allCubeFaceBits,
		dx10: []uint32{
			uint32(DXGIFormatBC3UNorm),
			uint32(Texture2D),
			DX10MiscTextureCube,
			4,
			uint32(AlphaModeUnknown),
		},
		payload: payload,
	}
}

func TestDecodeHeaderDX10(t *testing.T) {
	t.Parallel()

	h, err := DecodeHeader(bytes.NewReader(dx10CubeArray(nil).bytes()))
	if err != nil {
		t.Fatalf("DecodeHeader error = %v", err)
	}

	if !h.IsDX10() {
		t.Fatal("DX10 header not detected")
	}
	if h.MipCount() != 3 || h.LayerCount() != 4 {
		t.Fatalf("mips/layers = %d/%d, want 3/4", h.MipCount(), h.LayerCount())
	}
	if got := h.Faces(); len(got) != 6 {
		t.Fatalf("Faces() = %v", got)
	}
	format, err := h.Format()
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if format != texture.BC3(false) {
		t.Fatalf("Format() = %+v, want BC3", format)
	}
}

func TestHeaderRoundTripBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  rawDDS
	}{
		{name: "legacy-cubemap", raw: legacyCubemapRGB(nil)},
		{name: "dx10-cube-array", raw: dx10CubeArray(nil)},
		{
			name: "legacy-bc1-mips",
			raw: rawDDS{
				flags:   HeaderFlagsTexture | DMipMapCount | DLinearSize,
				height:  16,
				width:   16,
				pitch:   128,
				mips:    5,
				pfFlags: PFFourCC,
				fourCC:  FourCCDXT1.uint32(),
				caps:    CapsTexture | CapsComplex | CapsMipMap,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := tc.raw.bytes()
			h, err := DecodeHeader(bytes.NewReader(in))
			if err != nil {
				t.Fatalf("DecodeHeader error = %v", err)
			}

			var out bytes.Buffer
			if err := EncodeHeader(&out, h); err != nil {
				t.Fatalf("EncodeHeader error = %v", err)
			}

			// size through mipmap count
			if !bytes.Equal(out.Bytes()[4:32], in[4:32]) {
				t.Fatalf("bytes 4..32 differ:\n got %x\nwant %x", out.Bytes()[4:32], in[4:32])
			}
			// pixel format and caps
			if !bytes.Equal(out.Bytes()[76:124], in[76:124]) {
				t.Fatalf("bytes 76..124 differ:\n got %x\nwant %x", out.Bytes()[76:124], in[76:124])
			}
			// the DX10 extension
			if len(tc.raw.dx10) > 0 && !bytes.Equal(out.Bytes()[128:148], in[128:148]) {
				t.Fatalf("DX10 bytes differ:\n got %x\nwant %x", out.Bytes()[128:148], in[128:148])
			}
		})
	}
}
