// Package cli implements the command-line interface for ddstool.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/dds/internal/vars"
)

// Root defines global CLI flags.
type Root struct{}

// CmdVersion prints build metadata.
type CmdVersion struct{}

// Execute runs the version command.
func (c *CmdVersion) Execute(args []string) error {
	vars.Print()
	return nil
}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])

	prog := parser.Name
	if _, err := parser.AddCommand(
		"info",
		"Print DDS header and surface layout",
		fmt.Sprintf(
			`Print the header kind, dimensions, format, and shape of a DDS file,
with per-surface sizes and optional content digests.

Examples:
  %s info texture.dds
  %s info --hash cubemap.dds`,
			prog, prog,
		),
		&CmdInfo{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"export",
		"Export one surface to an image file",
		fmt.Sprintf(
			`Decode one surface of a DDS file and save it as png, bmp, tga, or tiff.

Examples:
  %s export texture.dds texture.png
  %s export cubemap.dds face.png -f +Z -m 2`,
			prog, prog,
		),
		&CmdExport{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"convert",
		"Rewrite a DDS file with a different header encoding",
		fmt.Sprintf(
			`Read a DDS file and write it back with the selected header mode.

Examples:
  %s convert in.dds out.dds --mode dx10
  %s convert in.dds out.dds --mode legacy`,
			prog, prog,
		),
		&CmdConvert{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"create",
		"Create an uncompressed DDS from an image file",
		fmt.Sprintf(
			`Wrap a png, bmp, tga, or tiff image as a single-surface BGRA8 DDS.

Examples:
  %s create icon.png icon.dds`,
			prog,
		),
		&CmdCreate{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"build",
		"Run conversion jobs from a .ddstool.yaml config",
		fmt.Sprintf(
			`Run multiple convert/export jobs from a config file.

Examples:
  %s build ./jobs.yaml
  %s build --job icons --job ui`,
			prog, prog,
		),
		&CmdBuild{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"version",
		"Show version information",
		"Print build metadata.",
		&CmdVersion{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)
	return err
}
