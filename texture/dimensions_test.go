package texture

import (
	"slices"
	"testing"
)

func mustDims(t *testing.T, axes ...uint32) Dimensions {
	t.Helper()
	d, err := New(axes...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", axes, err)
	}
	return d
}

func TestNewDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		axes    []uint32
		wantErr bool
	}{
		{name: "1d", axes: []uint32{4}},
		{name: "2d", axes: []uint32{4, 8}},
		{name: "3d", axes: []uint32{4, 8, 2}},
		{name: "empty", axes: nil, wantErr: true},
		{name: "too-many", axes: []uint32{1, 2, 3, 4}, wantErr: true},
		{name: "zero-axis", axes: []uint32{4, 0}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, err := New(tc.axes...)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("New(%v) expected error", tc.axes)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v) error = %v", tc.axes, err)
			}
			if d.Len() != len(tc.axes) {
				t.Fatalf("Len() = %d, want %d", d.Len(), len(tc.axes))
			}
		})
	}
}

func TestDimensionsAccessors(t *testing.T) {
	t.Parallel()

	d := mustDims(t, 16)
	if d.Width() != 16 || d.Height() != 1 || d.Depth() != 1 {
		t.Fatalf("1D accessors = %d,%d,%d", d.Width(), d.Height(), d.Depth())
	}

	d = mustDims(t, 16, 8, 4)
	if d.Width() != 16 || d.Height() != 8 || d.Depth() != 4 {
		t.Fatalf("3D accessors = %d,%d,%d", d.Width(), d.Height(), d.Depth())
	}
	if d.Product() != 16*8*4 {
		t.Fatalf("Product() = %d", d.Product())
	}
}

func TestDimensionsMips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dims Dimensions
		want []Dimensions
	}{
		{
			name: "square",
			dims: mustDims(t, 16, 16),
			want: []Dimensions{
				mustDims(t, 16, 16), mustDims(t, 8, 8), mustDims(t, 4, 4),
				mustDims(t, 2, 2), mustDims(t, 1, 1),
			},
		},
		{
			name: "uneven",
			dims: mustDims(t, 8, 2),
			want: []Dimensions{
				mustDims(t, 8, 2), mustDims(t, 4, 1), mustDims(t, 2, 1), mustDims(t, 1, 1),
			},
		},
		{
			name: "unit",
			dims: mustDims(t, 1, 1),
			want: []Dimensions{mustDims(t, 1, 1)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(tc.dims.Mips())
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Mips() = %v, want %v", got, tc.want)
			}

			// the sequence restarts cleanly
			again := slices.Collect(tc.dims.Mips())
			if !slices.Equal(again, tc.want) {
				t.Fatalf("second Mips() = %v, want %v", again, tc.want)
			}
		})
	}
}

func TestDimensionsBlocks(t *testing.T) {
	t.Parallel()

	block := mustDims(t, 4, 4)

	tests := []struct {
		name string
		dims Dimensions
		want Dimensions
	}{
		{name: "exact", dims: mustDims(t, 16, 16), want: mustDims(t, 4, 4)},
		{name: "round-up", dims: mustDims(t, 17, 3), want: mustDims(t, 5, 1)},
		{name: "unit", dims: mustDims(t, 1, 1), want: mustDims(t, 1, 1)},
		// block axes beyond the block's arity default to 1
		{name: "volume", dims: mustDims(t, 8, 8, 3), want: mustDims(t, 2, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.dims.Blocks(block); got != tc.want {
				t.Fatalf("Blocks() = %v, want %v", got, tc.want)
			}
		})
	}
}
