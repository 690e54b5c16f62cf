package texture

import "fmt"

// Texture is an encoded texture: a Format plus one or more surfaces
// structured as a Shape. Textures are immutable; slicing produces new
// textures that share the underlying surface bytes.
type Texture struct {
	format   Format
	surfaces Shape
}

// NewTexture pairs a format with a shape. Every surface byte buffer must
// match the format's size for its dimensions.
func NewTexture(format Format, surfaces Shape) (Texture, error) {
	for v := range surfaces.All() {
		want := format.SizeFor(v.Surface.Dimensions())
		if got := len(v.Surface.Data()); got != want {
			return Texture{}, &FormatError{
				Msg: fmt.Sprintf("surface has %d bytes, format %s needs %d for %s",
					got, format, want, v.Surface.Dimensions()),
			}
		}
	}
	return Texture{format: format, surfaces: surfaces}, nil
}

// Format returns the texture format.
func (t Texture) Format() Format { return t.format }

// Surfaces returns the shape tree of surfaces.
func (t Texture) Surfaces() Shape { return t.surfaces }

// Dimensions returns the dimensions of the largest surface.
func (t Texture) Dimensions() Dimensions { return t.surfaces.Dimensions() }

// MipCount returns the number of mip levels, or 0 without mipmaps.
func (t Texture) MipCount() int { return t.surfaces.MipCount() }

// LayerCount returns the number of array layers, or 0 without an array.
func (t Texture) LayerCount() int { return t.surfaces.LayerCount() }

// Faces returns the cubemap faces in canonical order, or nil.
func (t Texture) Faces() []CubeFace { return t.surfaces.Faces() }

// Surface returns the single surface of a surface-only texture.
func (t Texture) Surface() (Surface, bool) { return t.surfaces.Surface() }

// Get slices the texture by index, keeping the format.
func (t Texture) Get(idx Index) (Texture, bool) {
	sub, ok := t.surfaces.Get(idx)
	if !ok {
		return Texture{}, false
	}
	return Texture{format: t.format, surfaces: sub}, true
}

// GetFace returns the subtexture for one cubemap face.
func (t Texture) GetFace(f CubeFace) (Texture, bool) { return t.Get(Face(f)) }

// GetMip returns the subtexture for one mip level.
func (t Texture) GetMip(i int) (Texture, bool) { return t.Get(Mip(i)) }

// GetLayer returns the subtexture for one array layer.
func (t Texture) GetLayer(i int) (Texture, bool) { return t.Get(Layer(i)) }

// TexturesFromMips builds a mipmapped texture from per-level textures,
// which must share one format.
func TexturesFromMips(mips []Texture) (Texture, error) {
	format, nodes, err := splitFormats(mips)
	if err != nil {
		return Texture{}, err
	}
	shape, err := NewMips(nodes)
	if err != nil {
		return Texture{}, err
	}
	return Texture{format: format, surfaces: shape}, nil
}

// TextureFaceEntry pairs a cubemap face with its texture for
// TexturesFromFaces.
type TextureFaceEntry struct {
	Face    CubeFace
	Texture Texture
}

// TexturesFromFaces builds a cubemap texture from per-face textures,
// which must share one format.
func TexturesFromFaces(entries []TextureFaceEntry) (Texture, error) {
	if len(entries) == 0 {
		return Texture{}, &ShapeError{Kind: ShapeEmpty, Detail: "cube"}
	}
	format := entries[0].Texture.format
	nodes := make([]FaceEntry, len(entries))
	for i, e := range entries {
		if e.Texture.format != format {
			return Texture{}, &ShapeError{Kind: ShapeNonUniform, Detail: "format"}
		}
		nodes[i] = FaceEntry{Face: e.Face, Shape: e.Texture.surfaces}
	}
	shape, err := NewFaces(nodes)
	if err != nil {
		return Texture{}, err
	}
	return Texture{format: format, surfaces: shape}, nil
}

// TexturesFromLayers builds an array texture from per-layer textures,
// which must share one format.
func TexturesFromLayers(layers []Texture) (Texture, error) {
	format, nodes, err := splitFormats(layers)
	if err != nil {
		return Texture{}, err
	}
	shape, err := NewLayers(nodes)
	if err != nil {
		return Texture{}, err
	}
	return Texture{format: format, surfaces: shape}, nil
}

func splitFormats(textures []Texture) (Format, []Shape, error) {
	if len(textures) == 0 {
		// let the shape constructor report the empty list
		return Format{}, nil, nil
	}
	format := textures[0].format
	nodes := make([]Shape, len(textures))
	for i, t := range textures {
		if t.format != format {
			return Format{}, nil, &ShapeError{Kind: ShapeNonUniform, Detail: "format"}
		}
		nodes[i] = t.surfaces
	}
	return format, nodes, nil
}
