package s3tc

import "encoding/binary"

// BC1Block is one 8-byte BC1 (DXT1) block: two RGB565 endpoints followed
// by sixteen 2-bit palette codes.
type BC1Block struct {
	Color0 uint16
	Color1 uint16
	Codes  [16]uint8 // 2-bit selectors, row-major
}

// Size returns the wire size.
func (b *BC1Block) Size() int { return 8 }

// Decode reads the block from its 8 wire bytes.
func (b *BC1Block) Decode(src []byte) {
	b.Color0 = binary.LittleEndian.Uint16(src[0:2])
	b.Color1 = binary.LittleEndian.Uint16(src[2:4])
	codes := binary.LittleEndian.Uint32(src[4:8])
	for i := range b.Codes {
		b.Codes[i] = uint8(codes>>(i*2)) & 0x3
	}
}

// Encode writes the block into its 8 wire bytes.
func (b *BC1Block) Encode(dst []byte) {
	binary.LittleEndian.PutUint16(dst[0:2], b.Color0)
	binary.LittleEndian.PutUint16(dst[2:4], b.Color1)
	var codes uint32
	for i, c := range b.Codes {
		codes |= uint32(c&0x3) << (i * 2)
	}
	binary.LittleEndian.PutUint32(dst[4:8], codes)
}

// palette expands the endpoint pair into the four reference colors.
// In BC1 proper, color0 <= color1 selects the three-color mode with a
// transparent fourth entry; BC2 and BC3 color blocks always use the
// four-color mode.
func (b *BC1Block) palette(allowTransparency bool) [4]ColorRGBA {
	c0 := from565(b.Color0)
	c1 := from565(b.Color1)

	if allowTransparency && b.Color0 <= b.Color1 {
		return [4]ColorRGBA{
			c0,
			c1,
			mixColor11Over2(c0, c1),
			{}, // transparent black
		}
	}
	return [4]ColorRGBA{
		c0,
		c1,
		mixColor21Over3(c0, c1),
		mixColor21Over3(c1, c0),
	}
}

// pixels decodes the block to 16 RGBA texels.
func (b *BC1Block) pixels(allowTransparency bool) [16]ColorRGBA {
	ref := b.palette(allowTransparency)
	var out [16]ColorRGBA
	for i, code := range b.Codes {
		out[i] = ref[code]
	}
	return out
}

// DecodeBC1 decodes a BC1 surface to RGBA bytes.
func DecodeBC1(data []byte, width, height int) ([]byte, error) {
	if err := checkDecodeInput(data, width, height, 8); err != nil {
		return nil, err
	}

	blocksW, blocksH := blockCount(width, height)
	out := make([]byte, width*height*4)

	var block BC1Block
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			offset := (by*blocksW + bx) * 8
			block.Decode(data[offset : offset+8])
			writePixels(out, block.pixels(true), bx, by, width, height)
		}
	}
	return out, nil
}
