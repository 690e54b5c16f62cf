// Package texture provides the shaped texture model: dimensions, pixel
// formats, and the mip/cube/array shape tree over raw surfaces.
package texture

import (
	"fmt"
	"iter"
	"strings"
)

// Dimensions is a 1D, 2D, or 3D texture size. Absent axes read as 1.
// The zero value is not a valid Dimensions; use New.
type Dimensions struct {
	n int
	v [3]uint32
}

// New creates Dimensions from 1 to 3 positive axis values.
func New(axes ...uint32) (Dimensions, error) {
	if len(axes) < 1 || len(axes) > 3 {
		return Dimensions{}, &DimensionsError{
			Msg: fmt.Sprintf("dimensions cannot be created with a dimensionality of %d", len(axes)),
		}
	}
	var d Dimensions
	d.n = len(axes)
	for i, a := range axes {
		if a == 0 {
			return Dimensions{}, &DimensionsError{
				Msg: fmt.Sprintf("axis %d must be positive", i),
			}
		}
		d.v[i] = a
	}
	return d, nil
}

// Len returns the dimensionality (1, 2, or 3).
func (d Dimensions) Len() int { return d.n }

// Width returns the first axis.
func (d Dimensions) Width() uint32 { return d.axis(0) }

// Height returns the second axis, or 1 for 1D dimensions.
func (d Dimensions) Height() uint32 { return d.axis(1) }

// Depth returns the third axis, or 1 for 1D and 2D dimensions.
func (d Dimensions) Depth() uint32 { return d.axis(2) }

func (d Dimensions) axis(i int) uint32 {
	if i >= d.n {
		return 1
	}
	return d.v[i]
}

// Product returns width * height * depth.
func (d Dimensions) Product() int {
	return int(d.Width()) * int(d.Height()) * int(d.Depth())
}

// Mips returns the mip chain starting at d: each step halves every axis
// (floor, never below 1) until all axes are 1. The all-ones terminal
// element is included. The sequence is restartable.
func (d Dimensions) Mips() iter.Seq[Dimensions] {
	return func(yield func(Dimensions) bool) {
		cur := d
		for {
			if !yield(cur) {
				return
			}
			if cur.allOnes() {
				return
			}
			cur = cur.half()
		}
	}
}

func (d Dimensions) allOnes() bool {
	for i := 0; i < d.n; i++ {
		if d.v[i] > 1 {
			return false
		}
	}
	return true
}

func (d Dimensions) half() Dimensions {
	next := d
	for i := 0; i < d.n; i++ {
		if v := d.v[i] / 2; v > 1 {
			next.v[i] = v
		} else {
			next.v[i] = 1
		}
	}
	return next
}

// Blocks returns the element-wise ceiling division of d by block. Missing
// axes of block are taken as 1; the result has the arity of d.
func (d Dimensions) Blocks(block Dimensions) Dimensions {
	out := d
	for i := 0; i < d.n; i++ {
		b := block.axis(i)
		out.v[i] = (d.v[i] + b - 1) / b
	}
	return out
}

func (d Dimensions) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		if i > 0 {
			sb.WriteByte('x')
		}
		fmt.Fprintf(&sb, "%d", d.v[i])
	}
	return sb.String()
}
