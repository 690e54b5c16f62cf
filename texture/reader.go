package texture

import (
	"fmt"
	"io"
	"log/slog"
)

// SurfaceReader builds shapes by consuming raw surface bytes from a
// stream. Container drivers compose its primitives to match the on-disk
// surface order; each primitive short-circuits to its inner callback when
// the corresponding structure is absent.
type SurfaceReader struct {
	Format Format
	R      io.Reader
}

// InnerFunc produces the subtree below one structural level.
type InnerFunc func(Dimensions) (Shape, error)

// ReadSurface reads one surface of Format.SizeFor(dims) bytes.
func (sr *SurfaceReader) ReadSurface(dims Dimensions) (Shape, error) {
	size := sr.Format.SizeFor(dims)
	if size < 0 {
		return Shape{}, &FormatError{Msg: "format has no size rule"}
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(sr.R, buf); err != nil {
		return Shape{}, fmt.Errorf("reading %s surface (%d bytes): %w", dims, size, err)
	}
	Logger().Debug("read surface", slog.String("dims", dims.String()), slog.Int("bytes", size))
	return NewSurface(dims, buf).Shape(), nil
}

// ReadMips builds a mipmap of count levels by calling inner for each
// level's dimensions, largest first. The chain ends at the all-ones level,
// so a count longer than the chain yields only the chain's levels. A count
// of zero or less delegates to inner unchanged.
func (sr *SurfaceReader) ReadMips(dims Dimensions, count int, inner InnerFunc) (Shape, error) {
	if count <= 0 {
		return inner(dims)
	}
	children := make([]Shape, 0, count)
	for d := range dims.Mips() {
		if len(children) == count {
			break
		}
		c, err := inner(d)
		if err != nil {
			return Shape{}, err
		}
		children = append(children, c)
	}
	return NewMips(children)
}

// ReadFaces builds a cubemap by calling inner once per face, in the given
// order. A nil face list delegates to inner unchanged.
func (sr *SurfaceReader) ReadFaces(dims Dimensions, faces []CubeFace, inner InnerFunc) (Shape, error) {
	if faces == nil {
		return inner(dims)
	}
	entries := make([]FaceEntry, 0, len(faces))
	for _, f := range faces {
		c, err := inner(dims)
		if err != nil {
			return Shape{}, err
		}
		entries = append(entries, FaceEntry{Face: f, Shape: c})
	}
	return NewFaces(entries)
}

// ReadLayers builds an array of count layers by calling inner once per
// layer. A count of zero or less delegates to inner unchanged.
func (sr *SurfaceReader) ReadLayers(dims Dimensions, count int, inner InnerFunc) (Shape, error) {
	if count <= 0 {
		return inner(dims)
	}
	children := make([]Shape, 0, count)
	for i := 0; i < count; i++ {
		c, err := inner(dims)
		if err != nil {
			return Shape{}, err
		}
		children = append(children, c)
	}
	return NewLayers(children)
}
