package cli

import (
	"image"
	"image/draw"
	"os"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/internal/imageio"
	"github.com/woozymasta/dds/texture"
)

// CmdCreate wraps an image file as a single-surface uncompressed DDS.
type CmdCreate struct {
	Args struct {
		Input  string `positional-arg-name:"input" required:"yes" description:"Input image (png, bmp, tga, tiff)"`
		Output string `positional-arg-name:"output" required:"yes" description:"Output .dds path"`
	} `positional-args:"yes"`
}

// Execute runs the create command.
func (c *CmdCreate) Execute(args []string) error {
	img, err := imageio.Read(c.Args.Input)
	if err != nil {
		return err
	}

	tex, err := textureFromImage(img)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Args.Output)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	return dds.WriteTexture(out, tex)
}

// textureFromImage converts an image to a single BGRA8 surface, the
// layout legacy DDS readers expect for 32-bit uncompressed files.
func textureFromImage(img image.Image) (texture.Texture, error) {
	b := img.Bounds()
	rgba := image.NewNRGBA(b)
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	payload := make([]byte, len(rgba.Pix))
	for i := 0; i+3 < len(payload); i += 4 {
		payload[i] = rgba.Pix[i+2]   // B
		payload[i+1] = rgba.Pix[i+1] // G
		payload[i+2] = rgba.Pix[i]   // R
		payload[i+3] = rgba.Pix[i+3] // A
	}

	dims, err := texture.New(uint32(b.Dx()), uint32(b.Dy()))
	if err != nil {
		return texture.Texture{}, err
	}

	format := texture.Uncompressed(4,
		texture.ColorFormat{
			Model: texture.ColorRGB,
			Masks: [3]uint32{0xFF0000, 0xFF00, 0xFF},
		},
		texture.AlphaFormat{Kind: texture.AlphaCustom, Mask: 0xFF000000},
	)

	return texture.NewTexture(format, texture.NewSurface(dims, payload).Shape())
}
