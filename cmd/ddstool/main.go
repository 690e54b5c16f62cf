package main

import (
	"os"

	"github.com/woozymasta/dds/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
