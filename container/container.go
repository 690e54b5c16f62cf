// Package container defines the interface shared by texture container
// formats. A container header describes dimensions, shape, and format,
// but carries no surface data itself.
package container

import (
	"io"

	"github.com/woozymasta/dds/texture"
)

// Header is a decoded texture container header.
type Header interface {
	// ReadSurfaces reads the surface data described by the header.
	ReadSurfaces(r io.Reader) (texture.Shape, error)

	// WriteSurfaces writes the shape's surfaces in the container's order.
	WriteSurfaces(w io.Writer, s texture.Shape) error

	// Dimensions returns the dimensions of the largest surface.
	Dimensions() texture.Dimensions

	// MipCount returns the mip level count, or 0 without mipmaps.
	MipCount() int

	// LayerCount returns the array layer count, or 0 without an array.
	LayerCount() int

	// Faces returns the cubemap faces, or nil for non-cubemaps.
	Faces() []texture.CubeFace

	// Format returns the texture format the surfaces are encoded in.
	Format() (texture.Format, error)
}

// ReadTexture assembles a texture from a decoded header and the stream
// positioned at its surface data.
func ReadTexture(h Header, r io.Reader) (texture.Texture, error) {
	format, err := h.Format()
	if err != nil {
		return texture.Texture{}, err
	}
	surfaces, err := h.ReadSurfaces(r)
	if err != nil {
		return texture.Texture{}, err
	}
	return texture.NewTexture(format, surfaces)
}
