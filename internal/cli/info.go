package cli

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/woozymasta/dds"
	"github.com/woozymasta/dds/texture"
)

// CmdInfo prints header and surface layout details of a DDS file.
type CmdInfo struct {
	Args struct {
		Input string `positional-arg-name:"input" required:"yes" description:"Path to a .dds file"`
	} `positional-args:"yes"`

	Hash bool `short:"x" long:"hash" description:"Print an xxhash64 digest of each surface"`
}

// Execute runs the info command.
func (c *CmdInfo) Execute(args []string) error {
	f, err := os.Open(c.Args.Input)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	h, err := dds.DecodeHeader(f)
	if err != nil {
		return err
	}

	printHeader(h)

	shape, err := h.ReadSurfaces(f)
	if err != nil {
		return err
	}

	for v := range shape.All() {
		fmt.Printf("  %s %10s %8d bytes", surfaceLabel(v), v.Surface.Dimensions(), len(v.Surface.Data()))
		if c.Hash {
			fmt.Printf("  %016x", xxhash.Sum64(v.Surface.Data()))
		}
		fmt.Println()
	}

	return nil
}

func printHeader(h *dds.Header) {
	kind := "legacy"
	if h.IsDX10() {
		kind = "DX10"
	}
	fmt.Printf("header:     %s\n", kind)
	fmt.Printf("dimensions: %s\n", h.Dimensions())

	if format, err := h.Format(); err != nil {
		fmt.Printf("format:     %v\n", err)
	} else {
		fmt.Printf("format:     %s\n", format)
	}
	if h.IsDX10() {
		fmt.Printf("dxgi:       %s\n", h.DXGIFormat())
	} else if fc, ok := h.PixelFormat().FourCC(); ok {
		fmt.Printf("fourcc:     %s\n", fc)
	}

	if mips := h.MipCount(); mips > 0 {
		fmt.Printf("mips:       %d\n", mips)
	}
	if layers := h.LayerCount(); layers > 0 {
		fmt.Printf("layers:     %d\n", layers)
	}
	if faces := h.Faces(); faces != nil {
		fmt.Printf("faces:      %v\n", faces)
	}
}

func surfaceLabel(v texture.SurfaceView) string {
	label := ""
	if v.Layer >= 0 {
		label += fmt.Sprintf("layer %d ", v.Layer)
	}
	if v.Face >= 0 {
		label += fmt.Sprintf("face %s ", texture.CubeFace(v.Face))
	}
	if v.Mip >= 0 {
		label += fmt.Sprintf("mip %d", v.Mip)
	}
	if label == "" {
		label = "surface"
	}
	return fmt.Sprintf("%-18s", label)
}
