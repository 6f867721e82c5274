// Package logging builds the structured loggers used by the compiler.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured library logger. It writes to stderr so callers
// piping render output on stdout keep a clean stream, and standardizes the
// "error" key to "err".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
