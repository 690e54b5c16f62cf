package texture

import (
	"fmt"
	"io"
	"log/slog"
)

// SurfaceWriter emits a shape's raw surface bytes to a stream in
// canonical order: array layers in order, cubemap faces in canonical face
// order, mip levels largest first.
type SurfaceWriter struct {
	W io.Writer
}

// WriteShape writes every surface of the shape contiguously.
func (sw *SurfaceWriter) WriteShape(s Shape) error {
	for v := range s.All() {
		if _, err := sw.W.Write(v.Surface.Data()); err != nil {
			return fmt.Errorf("writing %s surface: %w", v.Surface.Dimensions(), err)
		}
		Logger().Debug("wrote surface",
			slog.String("dims", v.Surface.Dimensions().String()),
			slog.Int("bytes", len(v.Surface.Data())))
	}
	return nil
}
