package cli

import (
	"fmt"
	"os"

	"github.com/woozymasta/dds"
)

// CmdConvert rewrites a DDS file with a different header encoding.
type CmdConvert struct {
	Args struct {
		Input  string `positional-arg-name:"input" required:"yes" description:"Path to a .dds file"`
		Output string `positional-arg-name:"output" required:"yes" description:"Output .dds path"`
	} `positional-args:"yes"`

	Mode string `long:"mode" default:"prefer-legacy" choice:"prefer-legacy" choice:"legacy" choice:"dx10" description:"Header encoding"`
}

// Execute runs the convert command.
func (c *CmdConvert) Execute(args []string) error {
	return convertFile(c.Args.Input, c.Args.Output, c.Mode)
}

func convertFile(input, output, mode string) error {
	ddsArgs, err := parseMode(mode)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	tex, err := dds.ReadTexture(in)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	return dds.WriteTextureArgs(out, tex, ddsArgs)
}

func parseMode(mode string) (dds.Args, error) {
	switch mode {
	case "", "prefer-legacy":
		return dds.Args{Mode: dds.PreferLegacy}, nil
	case "legacy":
		return dds.Args{Mode: dds.ForceLegacy}, nil
	case "dx10":
		return dds.Args{Mode: dds.ForceDX10}, nil
	}
	return dds.Args{}, fmt.Errorf("unknown mode %q (supported: prefer-legacy, legacy, dx10)", mode)
}
