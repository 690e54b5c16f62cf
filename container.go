package dds

import (
	"io"
	"log/slog"

	"github.com/woozymasta/dds/container"
	"github.com/woozymasta/dds/texture"
)

var _ container.Header = (*Header)(nil)

// ReadSurfaces reads the surface data described by the header from a
// stream positioned just past it. DDS surfaces are ordered as
// Array(Cubemap(Mipmap(Surface))) with faces in canonical order.
func (h *Header) ReadSurfaces(r io.Reader) (texture.Shape, error) {
	format, err := h.Format()
	if err != nil {
		return texture.Shape{}, err
	}
	sr := &texture.SurfaceReader{Format: format, R: r}

	// Faces returns the canonical order the file is laid out in.
	faces := h.Faces()

	return sr.ReadLayers(h.dims, h.LayerCount(), func(d texture.Dimensions) (texture.Shape, error) {
		return sr.ReadFaces(d, faces, func(d texture.Dimensions) (texture.Shape, error) {
			return sr.ReadMips(d, h.mips, sr.ReadSurface)
		})
	})
}

// WriteSurfaces writes the shape's surfaces in the DDS order.
func (h *Header) WriteSurfaces(w io.Writer, s texture.Shape) error {
	sw := &texture.SurfaceWriter{W: w}
	return sw.WriteShape(s)
}

// ReadTexture decodes a complete DDS stream into a texture.
func ReadTexture(r io.Reader) (texture.Texture, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return texture.Texture{}, err
	}
	return container.ReadTexture(h, r)
}

// WriteTexture encodes the texture as a DDS stream with default
// arguments.
func WriteTexture(w io.Writer, t texture.Texture) error {
	return WriteTextureArgs(w, t, Args{})
}

// WriteTextureArgs encodes the texture as a DDS stream, choosing the
// header encoding per args.
func WriteTextureArgs(w io.Writer, t texture.Texture, args Args) error {
	h, err := FromTextureArgs(t, args)
	if err != nil {
		return err
	}
	if err := EncodeHeader(w, h); err != nil {
		return err
	}
	return h.WriteSurfaces(w, t.Surfaces())
}

// SetLogger configures logging for this package and the texture model it
// drives. By default no output is produced. Pass nil to restore the
// silent default.
func SetLogger(l *slog.Logger) {
	texture.SetLogger(l)
}
