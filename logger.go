package vecsum

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecsum-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(length int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// LogCreate logs a vector creation.
func (l *Logger) LogCreate(length int64, bytes int, offHeap bool, err error) {
	if err != nil {
		l.Error("vector allocation failed",
			"length", length,
			"error", err,
		)
		return
	}
	l.Debug("vector allocated",
		"length", length,
		"bytes", bytes,
		"off_heap", offHeap,
	)
}

// LogClose logs a vector release.
func (l *Logger) LogClose(length int64, bytes int, err error) {
	if err != nil {
		l.Error("vector release failed",
			"length", length,
			"bytes", bytes,
			"error", err,
		)
		return
	}
	l.Debug("vector released",
		"length", length,
		"bytes", bytes,
	)
}
