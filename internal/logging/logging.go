// Package logging is a thin wrapper over log/slog used by the CLI and
// HTTP adapters for request and command logging. The core packing and
// planning packages never import it: a packing job is a pure function
// of its inputs, and has nothing to log.
package logging

import (
	"log/slog"
	"os"
)

var base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetLevel adjusts the minimum level the default logger emits.
func SetLevel(level slog.Level) {
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Default returns the package-level logger, for adapters that want to
// attach request-scoped fields with With.
func Default() *slog.Logger {
	return base
}

// Info logs at info level with structured key/value pairs.
func Info(msg string, args ...any) {
	base.Info(msg, args...)
}

// Warn logs at warn level with structured key/value pairs.
func Warn(msg string, args ...any) {
	base.Warn(msg, args...)
}

// Error logs at error level with structured key/value pairs.
func Error(msg string, args ...any) {
	base.Error(msg, args...)
}

// Debug logs at debug level with structured key/value pairs.
func Debug(msg string, args ...any) {
	base.Debug(msg, args...)
}
