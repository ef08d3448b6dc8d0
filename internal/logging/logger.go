// Package logging configures the structured logger shared by the library
// and the confctl CLI.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text-format slog.Logger writing to w.
//
// When debug is true, the logger uses DEBUG level and includes source
// locations. Otherwise it uses INFO level without source information.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

// NewNopLogger returns a no-op logger. All log messages are discarded.
// This is the default inside the library when no logger is supplied, and
// what unit tests use.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1, // Higher than any log level, effectively disabling all logs
	}))
}
