package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaap/hardware-interfaces/internal/codegen/generator"
	"github.com/yaap/hardware-interfaces/internal/codegen/reconcile"
)

var ErrMissingBuildTop = errors.New("ANDROID_BUILD_TOP is not set; run source and lunch at the android root, or pass --android-build-top")

// Input locates VehicleProperty.aidl. Shared by every command that parses it.
type Input struct {
	AndroidBuildTop string `help:"Path to ANDROID_BUILD_TOP" type:"path" env:"ANDROID_BUILD_TOP"`
	Source          string `help:"VehicleProperty.aidl location, relative to the build top" default:"hardware/interfaces/automotive/vehicle/aidl_property/android/hardware/automotive/vehicle/VehicleProperty.aidl"`
}

func (in Input) validate() error {
	if in.AndroidBuildTop == "" {
		return ErrMissingBuildTop
	}
	return nil
}

type Generate struct {
	Input `embed:""`

	GeneratedDir   string   `help:"generated_lib directory, relative to the build top" default:"hardware/interfaces/automotive/vehicle/aidl/generated_lib"`
	PreuploadFiles []string `help:"Files modified in this change; the run is skipped unless the source file is among them"`
	CheckOnly      bool     `help:"Only check whether the generated files need update"`
	OutputCSV      string   `name:"output-csv" help:"Write the parsing result as CSV to this path (useful for doc generation) instead of generating files" type:"path"`
	Diff           string   `help:"Print unified diffs of stale files in check mode" enum:"auto,always,never" default:"auto"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	return g.run(logger, os.Stdout)
}

func (g *Generate) run(logger *slog.Logger, out io.Writer) error {
	if err := g.validate(); err != nil {
		return err
	}

	gen := generator.New(generator.Options{
		BuildTop:     g.AndroidBuildTop,
		Source:       g.Source,
		GeneratedDir: g.GeneratedDir,
	}, logger)

	if len(g.PreuploadFiles) > 0 && !touchesSource(g.PreuploadFiles, gen.SourcePath()) {
		logger.Info("Source not modified in this change, skipping", "source", filepath.Base(gen.SourcePath()))
		return nil
	}

	if g.OutputCSV != "" {
		return gen.ExportCSV(g.OutputCSV)
	}

	mode := reconcile.ModeDirect
	if g.CheckOnly {
		mode = reconcile.ModeCheck
	}
	logger.Info("Starting annotation code generation", "buildTop", g.AndroidBuildTop, "mode", mode)

	stale, err := gen.Run(mode)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	g.reportDrift(out, stale)
	return &reconcile.DriftError{Stale: stale}
}

func (g *Generate) reportDrift(out io.Writer, stale []reconcile.Drift) {
	showDiff := g.Diff == "always" || (g.Diff == "auto" && isTerminal(out))

	fmt.Fprintln(out, "The generated enum files for VehicleProperty.aidl require update:")
	for _, d := range stale {
		if d.Missing {
			fmt.Fprintf(out, "  %s (missing)\n", d.Path)
			continue
		}
		fmt.Fprintf(out, "  %s\n", d.Path)
		if showDiff {
			fmt.Fprint(out, d.Diff)
		}
	}
	fmt.Fprintf(out, "Run\n  annotationgen --android-build-top %s\n", g.AndroidBuildTop)
}

func touchesSource(files []string, source string) bool {
	base := filepath.Base(source)
	for _, f := range files {
		if strings.HasSuffix(f, base) {
			return true
		}
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
