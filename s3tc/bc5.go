package s3tc

// BC5Block is one 16-byte BC5 block: two BC4-coded channels, red then
// green.
type BC5Block struct {
	Red   BC4Block
	Green BC4Block
}

// Size returns the wire size.
func (b *BC5Block) Size() int { return 16 }

// Decode reads the block from its 16 wire bytes.
func (b *BC5Block) Decode(src []byte) {
	b.Red.Decode(src[0:8])
	b.Green.Decode(src[8:16])
}

// Encode writes the block into its 16 wire bytes.
func (b *BC5Block) Encode(dst []byte) {
	b.Red.Encode(dst[0:8])
	b.Green.Encode(dst[8:16])
}

// pixels decodes the block to 16 RGBA texels with an empty blue channel.
func (b *BC5Block) pixels() [16]ColorRGBA {
	red := b.Red.values()
	green := b.Green.values()
	var out [16]ColorRGBA
	for i := range out {
		out[i] = ColorRGBA{R: red[i], G: green[i], B: 0, A: 255}
	}
	return out
}

// DecodeBC5 decodes a two-channel BC5 surface to RGBA bytes.
func DecodeBC5(data []byte, width, height int) ([]byte, error) {
	if err := checkDecodeInput(data, width, height, 16); err != nil {
		return nil, err
	}

	blocksW, blocksH := blockCount(width, height)
	out := make([]byte, width*height*4)

	var block BC5Block
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			offset := (by*blocksW + bx) * 16
			block.Decode(data[offset : offset+16])
			writePixels(out, block.pixels(), bx, by, width, height)
		}
	}
	return out, nil
}
