// Package main is the entry point for the poscen command.
//
// poscen reads a POSCAR file, moves the centroid of its atoms to the middle
// of the cell and writes the result. With no arguments it reads POSCAR and
// writes POSCAR_centrado in the current directory. All the work is done
// by the internal/cli package.
package main

import (
	"github.com/rmera/poscen/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
