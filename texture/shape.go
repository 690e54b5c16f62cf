package texture

import (
	"iter"
	"slices"
)

// CubeFace identifies one face of a cubemap. The declaration order is the
// canonical serialization order: +X, -X, +Y, -Y, +Z, -Z.
type CubeFace uint8

const (
	PositiveX CubeFace = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

var cubeFaceOrder = [6]CubeFace{
	PositiveX, NegativeX,
	PositiveY, NegativeY,
	PositiveZ, NegativeZ,
}

// AllCubeFaces returns the six cubemap faces in canonical order.
func AllCubeFaces() []CubeFace {
	faces := cubeFaceOrder
	return faces[:]
}

func (f CubeFace) String() string {
	switch f {
	case PositiveX:
		return "+X"
	case NegativeX:
		return "-X"
	case PositiveY:
		return "+Y"
	case NegativeY:
		return "-Y"
	case PositiveZ:
		return "+Z"
	case NegativeZ:
		return "-Z"
	}
	return "?"
}

type shapeKind uint8

const (
	kindSurface shapeKind = iota
	kindMips
	kindCube
	kindArray
)

// Shape is a tree of surfaces structured by mipmaps, cubemap faces, and
// array layers. A valid shape contains at least one surface, never nests a
// kind inside itself, and keeps siblings uniform in dimensions and
// structure. The zero value is not a valid Shape; use the constructors.
//
// Shapes are immutable after construction. Copies and slices share the
// underlying surface buffers.
type Shape struct {
	kind  shapeKind
	leaf  Surface
	elems []Shape
	faces map[CubeFace]Shape
}

// Shape wraps the surface in a leaf shape node.
func (s Surface) Shape() Shape {
	return Shape{kind: kindSurface, leaf: s}
}

// FaceEntry pairs a cubemap face with its subtree for NewFaces.
type FaceEntry struct {
	Face  CubeFace
	Shape Shape
}

// NewMips builds a mipmap from children ordered largest first. The
// children must be non-empty, free of nested mipmaps, uniform in layer and
// face structure, and their dimensions must follow the halving chain of
// the first child.
func NewMips(children []Shape) (Shape, error) {
	if len(children) == 0 {
		return Shape{}, &ShapeError{Kind: ShapeEmpty, Detail: "mipmap"}
	}

	i := 0
	for want := range children[0].Dimensions().Mips() {
		if i >= len(children) {
			break
		}
		if children[i].Dimensions() != want {
			return Shape{}, &ShapeError{Kind: ShapeInvalidMipChain}
		}
		i++
	}
	if i < len(children) {
		// more children than the chain has levels
		return Shape{}, &ShapeError{Kind: ShapeInvalidMipChain}
	}

	first := children[0]
	for _, c := range children {
		if c.MipCount() != 0 {
			return Shape{}, &ShapeError{Kind: ShapeNested, Detail: "mipmap"}
		}
		if c.LayerCount() != first.LayerCount() {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "layers"}
		}
		if !slices.Equal(c.Faces(), first.Faces()) {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "faces"}
		}
	}

	return Shape{kind: kindMips, elems: slices.Clone(children)}, nil
}

// NewFaces builds a cubemap from face/subtree pairs. Faces must be unique
// and at least one must be present; children must be free of nested
// cubemaps and uniform in dimensions, mips, and layers.
func NewFaces(entries []FaceEntry) (Shape, error) {
	if len(entries) == 0 {
		return Shape{}, &ShapeError{Kind: ShapeEmpty, Detail: "cube"}
	}

	faces := make(map[CubeFace]Shape, len(entries))
	for _, e := range entries {
		if _, dup := faces[e.Face]; dup {
			return Shape{}, &ShapeError{Kind: ShapeDuplicateFaces}
		}
		faces[e.Face] = e.Shape
	}

	first := entries[0].Shape
	for _, e := range entries {
		if e.Shape.Dimensions() != first.Dimensions() {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "dimensions"}
		}
		if e.Shape.Faces() != nil {
			return Shape{}, &ShapeError{Kind: ShapeNested, Detail: "cube"}
		}
		if e.Shape.MipCount() != first.MipCount() {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "mips"}
		}
		if e.Shape.LayerCount() != first.LayerCount() {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "layers"}
		}
	}

	return Shape{kind: kindCube, faces: faces}, nil
}

// NewLayers builds an array from the ordered children. Children must be
// non-empty, free of nested arrays, and uniform in dimensions, mips, and
// faces.
func NewLayers(children []Shape) (Shape, error) {
	if len(children) == 0 {
		return Shape{}, &ShapeError{Kind: ShapeEmpty, Detail: "array"}
	}

	first := children[0]
	for _, c := range children {
		if c.LayerCount() != 0 {
			return Shape{}, &ShapeError{Kind: ShapeNested, Detail: "array"}
		}
		if c.Dimensions() != first.Dimensions() {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "dimensions"}
		}
		if c.MipCount() != first.MipCount() {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "mips"}
		}
		if !slices.Equal(c.Faces(), first.Faces()) {
			return Shape{}, &ShapeError{Kind: ShapeNonUniform, Detail: "faces"}
		}
	}

	return Shape{kind: kindArray, elems: slices.Clone(children)}, nil
}

// firstChild returns an arbitrary child used for structure queries; cube
// children are probed in canonical face order. Surfaces return themselves.
func (s Shape) firstChild() Shape {
	switch s.kind {
	case kindMips, kindArray:
		return s.elems[0]
	case kindCube:
		for _, f := range cubeFaceOrder {
			if c, ok := s.faces[f]; ok {
				return c
			}
		}
	}
	return s
}

// Dimensions returns the dimensions of the largest surface.
func (s Shape) Dimensions() Dimensions {
	if s.kind == kindSurface {
		return s.leaf.Dimensions()
	}
	return s.firstChild().Dimensions()
}

// MipCount returns the number of mip levels, or 0 when the shape has no
// mipmap structure.
func (s Shape) MipCount() int {
	switch s.kind {
	case kindSurface:
		return 0
	case kindMips:
		return len(s.elems)
	}
	return s.firstChild().MipCount()
}

// LayerCount returns the number of array layers, or 0 when the shape has
// no array structure.
func (s Shape) LayerCount() int {
	switch s.kind {
	case kindSurface:
		return 0
	case kindArray:
		return len(s.elems)
	}
	return s.firstChild().LayerCount()
}

// Faces returns the cubemap faces in canonical order, or nil when the
// shape has no cubemap structure.
func (s Shape) Faces() []CubeFace {
	switch s.kind {
	case kindSurface:
		return nil
	case kindCube:
		out := make([]CubeFace, 0, len(s.faces))
		for _, f := range cubeFaceOrder {
			if _, ok := s.faces[f]; ok {
				out = append(out, f)
			}
		}
		return out
	}
	return s.firstChild().Faces()
}

// Surface returns the leaf surface when the shape is a single surface
// node.
func (s Shape) Surface() (Surface, bool) {
	if s.kind != kindSurface {
		return Surface{}, false
	}
	return s.leaf, true
}

type indexKind uint8

const (
	idxFace indexKind = iota
	idxMip
	idxLayer
)

// Index selects a face, mip level, or array layer for Shape.Get.
type Index struct {
	kind   indexKind
	face   CubeFace
	lo, hi int
	ranged bool
}

// Face selects a single cubemap face.
func Face(f CubeFace) Index { return Index{kind: idxFace, face: f} }

// Mip selects a single mip level.
func Mip(i int) Index { return Index{kind: idxMip, lo: i} }

// MipRange selects the half-open mip level range [lo, hi).
func MipRange(lo, hi int) Index { return Index{kind: idxMip, lo: lo, hi: hi, ranged: true} }

// Layer selects a single array layer.
func Layer(i int) Index { return Index{kind: idxLayer, lo: i} }

// LayerRange selects the half-open layer range [lo, hi).
func LayerRange(lo, hi int) Index { return Index{kind: idxLayer, lo: lo, hi: hi, ranged: true} }

// Get slices the shape by the given index. A selection that resolves to a
// single element collapses the selected node; a multi-element range keeps
// it. Nodes of other kinds are rebuilt around their sliced children. Get
// reports false when the selected structure does not exist or the index is
// out of range.
func (s Shape) Get(idx Index) (Shape, bool) {
	switch s.kind {
	case kindSurface:
		return Shape{}, false

	case kindCube:
		if idx.kind == idxFace {
			c, ok := s.faces[idx.face]
			return c, ok
		}
		out := make(map[CubeFace]Shape, len(s.faces))
		for f, c := range s.faces {
			sub, ok := c.Get(idx)
			if !ok {
				return Shape{}, false
			}
			out[f] = sub
		}
		return Shape{kind: kindCube, faces: out}, true

	case kindMips:
		if idx.kind == idxMip {
			return sliceElems(s.elems, idx, kindMips)
		}
		return rebuildElems(s.elems, idx, kindMips)

	case kindArray:
		if idx.kind == idxLayer {
			return sliceElems(s.elems, idx, kindArray)
		}
		return rebuildElems(s.elems, idx, kindArray)
	}
	return Shape{}, false
}

func sliceElems(elems []Shape, idx Index, kind shapeKind) (Shape, bool) {
	lo, hi := idx.lo, idx.hi
	if !idx.ranged {
		hi = lo + 1
	}
	if lo < 0 || hi > len(elems) || lo >= hi {
		return Shape{}, false
	}
	sub := elems[lo:hi]
	if len(sub) == 1 {
		return sub[0], true
	}
	return Shape{kind: kind, elems: sub}, true
}

func rebuildElems(elems []Shape, idx Index, kind shapeKind) (Shape, bool) {
	out := make([]Shape, len(elems))
	for i, c := range elems {
		sub, ok := c.Get(idx)
		if !ok {
			return Shape{}, false
		}
		out[i] = sub
	}
	return Shape{kind: kind, elems: out}, true
}

// IterLayers yields (index, subtree-without-array) for each array layer,
// or the single pair (-1, s) when the shape has no array structure.
func (s Shape) IterLayers() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		n := s.LayerCount()
		if n == 0 {
			yield(-1, s)
			return
		}
		for i := 0; i < n; i++ {
			sub, ok := s.Get(Layer(i))
			if !ok {
				return
			}
			if !yield(i, sub) {
				return
			}
		}
	}
}

// IterFaces yields (face ordinal, subtree-without-cube) for each present
// face in canonical order, or the single pair (-1, s) when the shape has
// no cubemap structure.
func (s Shape) IterFaces() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		faces := s.Faces()
		if faces == nil {
			yield(-1, s)
			return
		}
		for _, f := range faces {
			sub, ok := s.Get(Face(f))
			if !ok {
				return
			}
			if !yield(int(f), sub) {
				return
			}
		}
	}
}

// IterMips yields (level, subtree-without-mipmap) for each mip level
// largest first, or the single pair (-1, s) when the shape has no mipmap
// structure.
func (s Shape) IterMips() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		n := s.MipCount()
		if n == 0 {
			yield(-1, s)
			return
		}
		for i := 0; i < n; i++ {
			sub, ok := s.Get(Mip(i))
			if !ok {
				return
			}
			if !yield(i, sub) {
				return
			}
		}
	}
}

// SurfaceView is one surface of a shape with its position in the
// layer/face/mip cross product. Absent structures read as -1.
type SurfaceView struct {
	Layer   int
	Face    int
	Mip     int
	Surface Surface
}

// All yields every surface in canonical order: layers in order, faces in
// canonical cubemap order, mips largest first.
func (s Shape) All() iter.Seq[SurfaceView] {
	return func(yield func(SurfaceView) bool) {
		for li, layer := range s.IterLayers() {
			for fi, face := range layer.IterFaces() {
				for mi, mip := range face.IterMips() {
					surf, ok := mip.Surface()
					if !ok {
						continue
					}
					if !yield(SurfaceView{Layer: li, Face: fi, Mip: mi, Surface: surf}) {
						return
					}
				}
			}
		}
	}
}
