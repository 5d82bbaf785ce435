package sparsevec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sparsevec-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler writes text records at info
// level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler != nil {
		return &Logger{Logger: slog.New(handler)}
	}
	return NewTextLogger(slog.LevelInfo)
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
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
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogBatchDot logs the outcome of a batch dot product.
func (l *Logger) LogBatchDot(ctx context.Context, count, concurrency int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch dot product failed",
			"count", count,
			"concurrency", concurrency,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch dot product completed",
			"count", count,
			"concurrency", concurrency,
		)
	}
}
