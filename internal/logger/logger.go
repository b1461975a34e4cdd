package logger

import (
	"io"
	"log/slog"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination for log records, typically os.Stderr
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// Init configures logging. Call before any log calls.
// If opts.Enabled is false or no writer is given, all log output is discarded.
func Init(opts Options) {
	if !opts.Enabled || opts.Writer == nil {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	L = slog.New(slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{Level: level}))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
