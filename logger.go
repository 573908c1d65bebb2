package alfpy

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with alfpy-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// WithWordSize adds a k (word size) field to the logger.
func (l *Logger) WithWordSize(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogStage logs the completion of one pipeline stage.
func (l *Logger) LogStage(ctx context.Context, stage string, duration time.Duration, attrs ...any) {
	l.DebugContext(ctx, stage+" completed", append([]any{"duration", duration}, attrs...)...)
}

// LogCompute logs a finished distance matrix request.
func (l *Logger) LogCompute(ctx context.Context, sequences int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compute failed",
			"sequences", sequences,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "compute completed",
			"sequences", sequences,
			"duration", duration,
		)
	}
}

// LogLoad logs a sequence input load.
func (l *Logger) LogLoad(ctx context.Context, name string, sequences int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sequences loaded",
			"name", name,
			"sequences", sequences,
		)
	}
}

// LogWrite logs a matrix output write.
func (l *Logger) LogWrite(ctx context.Context, name string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "matrix written",
			"name", name,
			"bytes", bytes,
		)
	}
}
