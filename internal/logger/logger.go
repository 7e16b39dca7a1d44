// Package logger provides a simple wrapper around slog for structured logging.
package logger

import (
	"log/slog"
	"os"
)

var level = newLevelVar()

// Logger is the global logger instance. Debug level is enabled when
// RTK_DEBUG is set to a non-empty value.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: level,
}))

func newLevelVar() *slog.LevelVar {
	v := new(slog.LevelVar)
	if os.Getenv("RTK_DEBUG") != "" {
		v.Set(slog.LevelDebug)
	}
	return v
}

// SetDebug enables debug-level logging at runtime.
func SetDebug() {
	level.Set(slog.LevelDebug)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
