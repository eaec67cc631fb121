package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yaap/hardware-interfaces/internal/codegen/emit"
	"github.com/yaap/hardware-interfaces/internal/codegen/export"
	"github.com/yaap/hardware-interfaces/internal/codegen/meta"
	"github.com/yaap/hardware-interfaces/internal/codegen/reconcile"
	"github.com/yaap/hardware-interfaces/internal/codegen/scanner"
	applog "github.com/yaap/hardware-interfaces/internal/log"
)

const (
	DefaultSourcePath   = "hardware/interfaces/automotive/vehicle/aidl_property/android/hardware/automotive/vehicle/VehicleProperty.aidl"
	DefaultGeneratedDir = "hardware/interfaces/automotive/vehicle/aidl/generated_lib"
)

// Options locate the input and outputs. Source and GeneratedDir are relative
// to BuildTop unless absolute.
type Options struct {
	BuildTop     string
	Source       string
	GeneratedDir string
}

type Generator struct {
	opts   Options
	logger *slog.Logger
}

// Output is one rendered file waiting to be reconciled.
type Output struct {
	Path    string
	Content []byte
}

func New(opts Options, logger *slog.Logger) *Generator {
	if opts.Source == "" {
		opts.Source = DefaultSourcePath
	}
	if opts.GeneratedDir == "" {
		opts.GeneratedDir = DefaultGeneratedDir
	}
	return &Generator{opts: opts, logger: logger}
}

func (g *Generator) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.opts.BuildTop, p)
}

// SourcePath is the absolute location of VehicleProperty.aidl.
func (g *Generator) SourcePath() string { return g.resolve(g.opts.Source) }

// Scan parses the source file and validates the resulting records.
func (g *Generator) Scan() (*meta.Metadata, error) {
	src := g.SourcePath()
	g.logger.Info("Scanning property annotations", "source", src)

	md, err := scanner.ScanAnnotationsFile(src)
	if err != nil {
		return nil, err
	}
	if err := md.Validate(); err != nil {
		return nil, err
	}

	for _, p := range md.Properties {
		g.logger.Log(context.Background(), applog.LevelTrace, "Parsed property",
			"name", p.Name,
			"changeMode", p.ChangeMode,
			"access", p.AccessModes,
			"version", p.Version)
	}
	g.logger.Info("Found properties", "count", len(md.Properties))
	return md, nil
}

// Render produces every artifact in memory. Nothing is written, so a render
// failure leaves the tree untouched.
func (g *Generator) Render(md *meta.Metadata) ([]Output, error) {
	var outputs []Output
	for _, a := range Artifacts() {
		for _, t := range a.Targets {
			content, err := emit.Render(md.Properties, t.Syntax, emit.Template{
				Field:  a.Kind.Field(),
				Header: t.Header,
				Footer: t.Footer,
			})
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", t.File, err)
			}
			outputs = append(outputs, Output{
				Path:    g.resolve(filepath.Join(g.opts.GeneratedDir, t.File)),
				Content: []byte(content),
			})
		}
	}
	return outputs, nil
}

// Run scans, renders and reconciles all artifacts. In check mode the
// returned slice lists the artifacts whose committed content is stale.
func (g *Generator) Run(mode reconcile.Mode) (stale []reconcile.Drift, err error) {
	md, err := g.Scan()
	if err != nil {
		return nil, err
	}
	outputs, err := g.Render(md)
	if err != nil {
		return nil, err
	}

	r := reconcile.New(mode, g.logger)
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for _, o := range outputs {
		if err := r.Write(o.Path, o.Content); err != nil {
			return nil, err
		}
	}

	stale, err = r.Stale()
	if err != nil {
		return nil, err
	}
	g.logger.Info("Code generation complete", "mode", mode, "files", len(outputs), "stale", len(stale))
	return stale, nil
}

// ExportCSV scans the source and writes the property table to path.
func (g *Generator) ExportCSV(path string) error {
	md, err := g.Scan()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteCSV(f, md.Properties); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	g.logger.Info("Wrote property table", "path", path, "rows", len(md.Properties))
	return nil
}
