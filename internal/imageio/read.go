// Package imageio loads and saves the image file formats the CLI
// converts textures from and to.
package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/woozymasta/png"
	_ "github.com/woozymasta/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Read loads an image from a supported file format.
func Read(path string) (image.Image, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "bmp", "tga", "tiff":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, err
		}
		return img, nil

	default:
		return nil, fmt.Errorf("unsupported input format: %q", ext)
	}
}
