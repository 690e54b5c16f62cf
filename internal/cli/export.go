package cli

import (
	"fmt"
	"image"
	"math/bits"
	"os"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/imageio"
	"github.com/woozymasta/dds/s3tc"
	"github.com/woozymasta/dds/texture"
)

// CmdExport decodes one surface of a DDS file into an image file.
type CmdExport struct {
	Args struct {
		Input  string `positional-arg-name:"input" required:"yes" description:"Path to a .dds file"`
		Output string `positional-arg-name:"output" required:"yes" description:"Output image (png, bmp, tga, tiff)"`
	} `positional-args:"yes"`

	Layer int    `short:"l" long:"layer" default:"0" description:"Array layer to export"`
	Face  string `short:"f" long:"face" description:"Cubemap face to export (+X -X +Y -Y +Z -Z)"`
	Mip   int    `short:"m" long:"mip" default:"0" description:"Mip level to export"`
}

// Execute runs the export command.
func (c *CmdExport) Execute(args []string) error {
	f, err := os.Open(c.Args.Input)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	tex, err := dds.ReadTexture(f)
	if err != nil {
		return err
	}

	surf, err := c.selectSurface(tex)
	if err != nil {
		return err
	}

	img, err := decodeSurface(tex.Format(), surf)
	if err != nil {
		return err
	}

	return imageio.Write(c.Args.Output, img)
}

func (c *CmdExport) selectSurface(tex texture.Texture) (texture.Surface, error) {
	sel := tex

	if tex.LayerCount() > 0 {
		sub, ok := sel.GetLayer(c.Layer)
		if !ok {
			return texture.Surface{}, fmt.Errorf("layer %d out of range (0..%d)", c.Layer, tex.LayerCount()-1)
		}
		sel = sub
	} else if c.Layer != 0 {
		return texture.Surface{}, fmt.Errorf("texture has no array layers")
	}

	if faces := sel.Faces(); faces != nil {
		face := faces[0]
		if c.Face != "" {
			parsed, err := parseFace(c.Face)
			if err != nil {
				return texture.Surface{}, err
			}
			face = parsed
		}
		sub, ok := sel.GetFace(face)
		if !ok {
			return texture.Surface{}, fmt.Errorf("face %s not present", face)
		}
		sel = sub
	} else if c.Face != "" {
		return texture.Surface{}, fmt.Errorf("texture has no cubemap faces")
	}

	if sel.MipCount() > 0 {
		sub, ok := sel.GetMip(c.Mip)
		if !ok {
			return texture.Surface{}, fmt.Errorf("mip %d out of range (0..%d)", c.Mip, sel.MipCount()-1)
		}
		sel = sub
	} else if c.Mip != 0 {
		return texture.Surface{}, fmt.Errorf("texture has no mipmaps")
	}

	surf, ok := sel.Surface()
	if !ok {
		return texture.Surface{}, fmt.Errorf("selection did not resolve to a single surface")
	}
	return surf, nil
}

func parseFace(s string) (texture.CubeFace, error) {
	for _, f := range texture.AllCubeFaces() {
		if s == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown face %q (expected +X, -X, +Y, -Y, +Z, or -Z)", s)
}

func decodeSurface(format texture.Format, surf texture.Surface) (image.Image, error) {
	d := surf.Dimensions()
	if d.Len() == 3 {
		return nil, fmt.Errorf("cannot export volume surfaces")
	}
	w, h := int(d.Width()), int(d.Height())

	var rgba []byte
	var err error
	switch format.Kind {
	case texture.FormatBC1:
		rgba, err = s3tc.DecodeBC1(surf.Data(), w, h)
	case texture.FormatBC2:
		rgba, err = s3tc.DecodeBC2(surf.Data(), w, h)
	case texture.FormatBC3:
		rgba, err = s3tc.DecodeBC3(surf.Data(), w, h)
	case texture.FormatBC4:
		rgba, err = s3tc.DecodeBC4(surf.Data(), w, h)
	case texture.FormatBC5:
		rgba, err = s3tc.DecodeBC5(surf.Data(), w, h)
	case texture.FormatUncompressed:
		rgba, err = decodeUncompressed(surf.Data(), format, w, h)
	default:
		err = fmt.Errorf("cannot decode format %s", format)
	}
	if err != nil {
		return nil, err
	}

	return &image.NRGBA{
		Pix:    rgba,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

func decodeUncompressed(data []byte, f texture.Format, w, h int) ([]byte, error) {
	pitch := int(f.Pitch)
	if pitch < 1 || pitch > 4 {
		return nil, fmt.Errorf("cannot decode %d bytes per pixel", pitch)
	}
	if f.Color.Model == texture.ColorYUV {
		return nil, fmt.Errorf("cannot decode YUV surfaces")
	}

	out := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		var px uint32
		for b := 0; b < pitch; b++ {
			px |= uint32(data[i*pitch+b]) << (8 * b)
		}

		var r, g, b uint8
		switch f.Color.Model {
		case texture.ColorRGB:
			r = maskChannel(px, f.Color.Masks[0])
			g = maskChannel(px, f.Color.Masks[1])
			b = maskChannel(px, f.Color.Masks[2])
		case texture.ColorLuminance:
			l := maskChannel(px, f.Color.Masks[0])
			r, g, b = l, l, l
		}

		a := uint8(255)
		if f.Alpha.Kind != texture.AlphaOpaque && f.Alpha.Mask != 0 {
			a = maskChannel(px, f.Alpha.Mask)
		}

		out[i*4] = r
		out[i*4+1] = g
		out[i*4+2] = b
		out[i*4+3] = a
	}
	return out, nil
}

// maskChannel extracts a masked channel and scales it to 8 bits.
func maskChannel(px, mask uint32) uint8 {
	if mask == 0 {
		return 0
	}
	v := (px & mask) >> uint(bits.TrailingZeros32(mask))
	width := bits.OnesCount32(mask)
	switch {
	case width == 8:
		return uint8(v)
	case width > 8:
		return uint8(v >> (width - 8))
	default:
		return uint8(v * 255 / (1<<width - 1))
	}
}
