package texture

import (
	"errors"
	"testing"
)

func TestNewTextureValidatesSizes(t *testing.T) {
	t.Parallel()

	d := mustDims(t, 4, 4)

	_, err := NewTexture(l8Format(), NewSurface(d, make([]byte, 16)).Shape())
	if err != nil {
		t.Fatalf("NewTexture error = %v", err)
	}

	_, err = NewTexture(l8Format(), NewSurface(d, make([]byte, 15)).Shape())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
}

func TestTextureSlicingSharesBuffers(t *testing.T) {
	t.Parallel()

	d := mustDims(t, 2, 2)
	buf := []byte{1, 2, 3, 4}
	base, err := NewTexture(l8Format(), NewSurface(d, buf).Shape())
	if err != nil {
		t.Fatalf("NewTexture error = %v", err)
	}

	layered, err := TexturesFromLayers([]Texture{base, base})
	if err != nil {
		t.Fatalf("TexturesFromLayers error = %v", err)
	}

	sub, ok := layered.GetLayer(1)
	if !ok {
		t.Fatal("GetLayer(1) failed")
	}
	surf, ok := sub.Surface()
	if !ok {
		t.Fatal("layer is not a surface")
	}
	if &surf.Data()[0] != &buf[0] {
		t.Fatal("sliced surface does not share the source buffer")
	}
}

func TestTexturesFromMipsFormatMismatch(t *testing.T) {
	t.Parallel()

	d4 := mustDims(t, 4, 4)
	d2 := mustDims(t, 2, 2)

	a, err := NewTexture(l8Format(), NewSurface(d4, make([]byte, 16)).Shape())
	if err != nil {
		t.Fatalf("NewTexture error = %v", err)
	}
	b, err := NewTexture(BC1(false), NewSurface(d2, make([]byte, 8)).Shape())
	if err != nil {
		t.Fatalf("NewTexture error = %v", err)
	}

	_, err = TexturesFromMips([]Texture{a, b})
	wantShapeErr(t, err, ShapeNonUniform, "format")
}
