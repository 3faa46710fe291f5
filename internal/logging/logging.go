// Package logging builds the slog loggers shared by the web server and
// the eventify CLI. Both take level and format as plain strings (flags
// and env vars) so the constructors do the parsing here.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger for the given level ("debug", "info", "warn",
// "error") and format ("text" or "json"). Unknown levels fall back to
// info and unknown formats to text.
//
// Output goes to stderr; stdout belongs to command output.
func New(level, format string) *slog.Logger {
	return NewWithWriter(level, format, os.Stderr)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to its slog.Level, ignoring case and
// surrounding whitespace. Unrecognized names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
