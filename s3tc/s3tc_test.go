package s3tc

import (
	"bytes"
	"testing"
)

func TestBlockSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block Block
		want  int
	}{
		{name: "bc1", block: &BC1Block{}, want: 8},
		{name: "bc2", block: &BC2Block{}, want: 16},
		{name: "bc3", block: &BC3Block{}, want: 16},
		{name: "bc4", block: &BC4Block{}, want: 8},
		{name: "bc5", block: &BC5Block{}, want: 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.block.Size(); got != tc.want {
				t.Fatalf("Size() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBC1BlockRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte{0x1F, 0x00, 0xE0, 0x07, 0x1B, 0xE4, 0x00, 0xFF}

	var block BC1Block
	block.Decode(src)

	if block.Color0 != 0x001F || block.Color1 != 0x07E0 {
		t.Fatalf("endpoints = %04x, %04x", block.Color0, block.Color1)
	}
	// first code byte 0x1B = 0b00011011: codes 3, 2, 1, 0
	want := [4]uint8{3, 2, 1, 0}
	for i, w := range want {
		if block.Codes[i] != w {
			t.Fatalf("Codes[%d] = %d, want %d", i, block.Codes[i], w)
		}
	}

	dst := make([]byte, block.Size())
	block.Encode(dst)
	if !bytes.Equal(dst, src) {
		t.Fatalf("round trip = %x, want %x", dst, src)
	}
}

func TestBC4BlockRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte{0xF0, 0x10, 0x49, 0x92, 0x24, 0x49, 0x92, 0x24}

	var block BC4Block
	block.Decode(src)
	if block.Endpoint0 != 0xF0 || block.Endpoint1 != 0x10 {
		t.Fatalf("endpoints = %02x, %02x", block.Endpoint0, block.Endpoint1)
	}

	dst := make([]byte, block.Size())
	block.Encode(dst)
	if !bytes.Equal(dst, src) {
		t.Fatalf("round trip = %x, want %x", dst, src)
	}
}

func TestBC3BlockRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte{
		0xFF, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0x1F, 0x00, 0x00, 0xF8, 0xAA, 0xAA, 0xAA, 0xAA,
	}

	var block BC3Block
	block.Decode(src)
	dst := make([]byte, block.Size())
	block.Encode(dst)
	if !bytes.Equal(dst, src) {
		t.Fatalf("round trip = %x, want %x", dst, src)
	}
}

func TestDecodeBC1Solid(t *testing.T) {
	t.Parallel()

	// one block, both endpoints pure red, all codes 0
	red := ColorRGBA{R: 0xF8, A: 255}.to565()
	block := BC1Block{Color0: red, Color1: red}
	data := make([]byte, 8)
	block.Encode(data)

	rgba, err := DecodeBC1(data, 4, 4)
	if err != nil {
		t.Fatalf("DecodeBC1 error = %v", err)
	}
	if len(rgba) != 4*4*4 {
		t.Fatalf("output length = %d", len(rgba))
	}
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != 0xF8 || rgba[i+1] != 0 || rgba[i+2] != 0 || rgba[i+3] != 255 {
			t.Fatalf("pixel %d = %v", i/4, rgba[i:i+4])
		}
	}
}

func TestDecodeBC1Transparent(t *testing.T) {
	t.Parallel()

	// color0 <= color1 selects the three-color mode; code 3 is transparent
	block := BC1Block{Color0: 0, Color1: 0xFFFF}
	for i := range block.Codes {
		block.Codes[i] = 3
	}
	data := make([]byte, 8)
	block.Encode(data)

	rgba, err := DecodeBC1(data, 4, 4)
	if err != nil {
		t.Fatalf("DecodeBC1 error = %v", err)
	}
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i+3] != 0 {
			t.Fatalf("pixel %d alpha = %d, want 0", i/4, rgba[i+3])
		}
	}
}

func TestDecodeBC4Palette(t *testing.T) {
	t.Parallel()

	// endpoint0 > endpoint1: eight interpolated values
	block := BC4Block{Endpoint0: 240, Endpoint1: 16}
	for i := range block.Codes {
		block.Codes[i] = uint8(i % 8)
	}
	data := make([]byte, 8)
	block.Encode(data)

	rgba, err := DecodeBC4(data, 4, 4)
	if err != nil {
		t.Fatalf("DecodeBC4 error = %v", err)
	}

	ref := block.palette()
	for i := 0; i < 16; i++ {
		want := ref[i%8]
		if rgba[i*4] != want {
			t.Fatalf("pixel %d = %d, want %d", i, rgba[i*4], want)
		}
	}
}

func TestDecodeBC4ConstantMode(t *testing.T) {
	t.Parallel()

	// endpoint0 <= endpoint1: codes 6 and 7 are the constants 0 and 255
	block := BC4Block{Endpoint0: 16, Endpoint1: 240}
	ref := block.palette()
	if ref[6] != 0 || ref[7] != 255 {
		t.Fatalf("palette constants = %d, %d", ref[6], ref[7])
	}
}

func TestDecodeShortInput(t *testing.T) {
	t.Parallel()

	if _, err := DecodeBC1(make([]byte, 4), 4, 4); err == nil {
		t.Fatal("expected error for short input")
	}
	if _, err := DecodeBC3(make([]byte, 8), 4, 4); err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestDecodeBC5Channels(t *testing.T) {
	t.Parallel()

	var block BC5Block
	block.Red.Endpoint0 = 200
	block.Red.Endpoint1 = 100
	block.Green.Endpoint0 = 50
	block.Green.Endpoint1 = 25
	data := make([]byte, 16)
	block.Encode(data)

	rgba, err := DecodeBC5(data, 4, 4)
	if err != nil {
		t.Fatalf("DecodeBC5 error = %v", err)
	}
	// all codes are 0: every pixel takes the first endpoints
	for i := 0; i < 16; i++ {
		if rgba[i*4] != 200 || rgba[i*4+1] != 50 || rgba[i*4+2] != 0 || rgba[i*4+3] != 255 {
			t.Fatalf("pixel %d = %v", i, rgba[i*4:i*4+4])
		}
	}
}
