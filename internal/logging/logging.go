package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Init installs a pterm-backed slog logger as the process default.
// Logs go to stderr so they never mix with payment lines on stdout.
func Init(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level))
}

// New builds a slog logger that renders through pterm into w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	logger := pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(ToPtermLevel(level))

	return slog.New(pterm.NewSlogHandler(logger))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func ToPtermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
