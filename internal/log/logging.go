// Package log builds the slog.Logger shared by all commands.
//
// Without a log file, records below error go to stdout and errors go to
// stderr, so a hook runner can capture failures separately. With a log file,
// the console only gets stderr output and the file receives everything at the
// configured level.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is below Debug; the generator logs each parsed property at this level.
const LevelTrace slog.Level = -8

// Config is embedded into the root CLI under the "log." prefix.
type Config struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"ANNOTATIONGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" type:"path" env:"ANNOTATIONGEN_LOG_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends records to every handler that accepts them.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelRange passes records whose level lies in [min, max).
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (r levelRange) in(l slog.Level) bool { return l >= r.min && l < r.max }

func (r levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return r.in(level) && r.h.Enabled(ctx, level)
}

func (r levelRange) Handle(ctx context.Context, rec slog.Record) error {
	if !r.in(rec.Level) {
		return nil
	}
	return r.h.Handle(ctx, rec)
}

func (r levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: r.min, max: r.max, h: r.h.WithAttrs(attrs)}
}

func (r levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: r.min, max: r.max, h: r.h.WithGroup(name)}
}

const levelMax slog.Level = 1 << 10

// NewLogger builds the console logger: records below error go to stdout, the
// rest to stderr. With a log File, console output goes to stderr only.
func NewLogger(cfg Config, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)

	if cfg.File == "" {
		logger := slog.New(fanout{
			levelRange{min: level, max: slog.LevelError, h: slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level})},
			levelRange{min: slog.LevelError, max: levelMax, h: slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError})},
		})
		return logger, nil, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(fanout{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
		slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
	})
	return logger, []io.Closer{f}, nil
}
