// Package reconcile writes generated artifacts either straight to their
// destination or, in check mode, to scratch files that are compared against
// the committed copies.
package reconcile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

type Mode int

const (
	// ModeDirect overwrites the destination files.
	ModeDirect Mode = iota
	// ModeCheck writes scratch files and reports destinations that differ.
	ModeCheck
)

func (m Mode) String() string {
	if m == ModeCheck {
		return "check"
	}
	return "direct"
}

// Drift describes one artifact whose committed content is out of date.
type Drift struct {
	Path    string
	Missing bool
	Diff    string
}

// DriftError is returned by Stale callers that want to fail the run.
type DriftError struct {
	Stale []Drift
}

func (e *DriftError) Error() string {
	paths := make([]string, len(e.Stale))
	for i, d := range e.Stale {
		paths[i] = d.Path
	}
	return fmt.Sprintf("%d generated file(s) require update: %s", len(e.Stale), strings.Join(paths, ", "))
}

type pending struct {
	scratch string
	target  string
}

// Reconciler is not safe for concurrent use.
type Reconciler struct {
	mode    Mode
	logger  *slog.Logger
	pending []pending
}

func New(mode Mode, logger *slog.Logger) *Reconciler {
	return &Reconciler{mode: mode, logger: logger}
}

func (r *Reconciler) Mode() Mode { return r.mode }

// Write stores content for target according to the reconciler's mode.
func (r *Reconciler) Write(target string, content []byte) error {
	if r.mode == ModeDirect {
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		r.logger.Debug("Wrote generated file", "path", target, "bytes", len(content))
		return nil
	}

	f, err := os.CreateTemp("", "annotationgen-*"+filepath.Ext(target))
	if err != nil {
		return fmt.Errorf("create scratch file for %s: %w", target, err)
	}
	r.pending = append(r.pending, pending{scratch: f.Name(), target: target})
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write scratch file for %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close scratch file for %s: %w", target, err)
	}
	r.logger.Debug("Wrote scratch file", "target", target, "scratch", f.Name())
	return nil
}

// Stale compares every scratch file with its destination. In direct mode
// nothing is pending and the result is always empty.
func (r *Reconciler) Stale() ([]Drift, error) {
	var stale []Drift
	for _, p := range r.pending {
		generated, err := os.ReadFile(p.scratch)
		if err != nil {
			return nil, fmt.Errorf("read scratch file for %s: %w", p.target, err)
		}
		committed, err := os.ReadFile(p.target)
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("Generated file missing", "path", p.target)
			stale = append(stale, Drift{Path: p.target, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p.target, err)
		}
		if bytes.Equal(generated, committed) {
			r.logger.Debug("Generated file up to date", "path", p.target)
			continue
		}
		diff, err := unifiedDiff(p.target, committed, generated)
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", p.target, err)
		}
		stale = append(stale, Drift{Path: p.target, Diff: diff})
	}
	return stale, nil
}

// Close removes all scratch files. It is safe to call more than once.
func (r *Reconciler) Close() error {
	var errs []error
	for _, p := range r.pending {
		if err := os.Remove(p.scratch); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove scratch file %s: %w", p.scratch, err))
		}
	}
	r.pending = nil
	return errors.Join(errs...)
}

func unifiedDiff(path string, committed, generated []byte) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(committed)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
