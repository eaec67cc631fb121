package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yaap/hardware-interfaces/internal/codegen/export"
	"github.com/yaap/hardware-interfaces/internal/codegen/generator"
)

// Scan dumps the parsed property records without generating anything. With no
// Output the dump owns stdout, so console logs must be routed to stderr (see
// config.CLI.ConsoleStdout).
type Scan struct {
	Input `embed:""`

	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file (defaults to stdout)" type:"path"`
}

// Run is called by Kong when the scan command is executed.
func (s *Scan) Run(logger *slog.Logger) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.Output == "" {
		return s.run(logger, os.Stdout)
	}

	f, err := os.Create(s.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.Output, err)
	}
	if err := s.run(logger, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (s *Scan) run(logger *slog.Logger, out io.Writer) error {
	gen := generator.New(generator.Options{BuildTop: s.AndroidBuildTop, Source: s.Source}, logger)
	md, err := gen.Scan()
	if err != nil {
		return err
	}
	return export.Encode(out, s.Format, md)
}
