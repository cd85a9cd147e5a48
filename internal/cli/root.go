// Package cli implements the cobra command for poscen.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/poscen"
)

// Version is set from the main package.
var Version = "dev"

// NewRootCommand creates the poscen command. Every flag has a default, so
// running it without arguments centers POSCAR into POSCAR_centrado.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		flags      = DefaultConfig()
	)
	cmd := &cobra.Command{
		Use:   "poscen",
		Short: "Center the atoms of a POSCAR file in its unit cell",
		Long: `poscen moves the geometric center of the atoms in a VASP POSCAR file
(direct coordinates) to the middle of the cell, wraps every atom back into
the cell and writes the result with the original 8 header lines.

Files ending in .gz or .zst are decompressed/compressed on the fly.

Examples:
  poscen
  poscen -i CONTCAR -o CONTCAR_centered
  poscen --config poscen.yaml --check-counts`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			if err != nil {
				return err
			}
			opts := cfg.Options()
			opts.Report = cmd.OutOrStdout()
			return poscen.CenterFile(cfg.Input, cfg.Output, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.Input, "input", "i", flags.Input, "POSCAR file to read")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "File to write the centered structure to")
	f.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	f.BoolVar(&flags.CheckCounts, "check-counts", false, "Fail if the atom counts in the header don't match the coordinates")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log the centroid, shift and cell lengths")
	return cmd
}

// resolveConfig merges the config file, if any, with the flags given explicitly.
func resolveConfig(cmd *cobra.Command, configPath string, flags *Config) (*Config, error) {
	if configPath == "" {
		return flags, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input = flags.Input
	}
	if f.Changed("output") {
		cfg.Output = flags.Output
	}
	if f.Changed("check-counts") {
		cfg.CheckCounts = flags.CheckCounts
	}
	if f.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
	return cfg, nil
}

// Execute runs cmd and exits with status 1 on error.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err and, for library errors, the trail of functions it went through.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if tr := poscen.Trace(err); tr != "" {
		fmt.Fprintf(w, "  trace: %s\n", tr)
	}
}
