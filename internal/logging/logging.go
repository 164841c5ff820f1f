package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Options describes logger construction parameters. Verbosity follows the -v
// count: 0 prints bare messages at info level, 1 adds timestamps and levels,
// 2 and above enables debug output with source locations.
type Options struct {
	Verbosity int
	Writer    io.Writer
}

// New constructs a slog logger writing human-oriented console lines.
func New(opts Options) *slog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := slog.LevelInfo
	if opts.Verbosity >= 2 {
		level = slog.LevelDebug
	}

	return slog.New(newConsoleHandler(writer, level, opts.Verbosity))
}

// NewNop returns a logger that discards everything. For tests and wiring
// code that cannot fail.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
