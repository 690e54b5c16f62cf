package texture

import "fmt"

// Surface is a single 1D/2D/3D buffer of pixel or block bytes at one mip
// level, for one face, of one layer. The byte buffer is shared and must
// not be mutated after the surface is created; slicing a texture produces
// new values that reference the same bytes with zero copy.
type Surface struct {
	dims Dimensions
	data []byte
}

// NewSurface wraps dims and data in a Surface. The caller gives up
// ownership of data.
func NewSurface(dims Dimensions, data []byte) Surface {
	return Surface{dims: dims, data: data}
}

// Dimensions returns the surface dimensions.
func (s Surface) Dimensions() Dimensions { return s.dims }

// Data returns the shared surface bytes. Callers must not modify the
// returned slice.
func (s Surface) Data() []byte { return s.data }

func (s Surface) String() string {
	return fmt.Sprintf("%s surface with %d bytes", s.dims, len(s.data))
}
