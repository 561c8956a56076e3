package textcluster

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with textcluster-specific context.
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
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a JSON Logger writing to w, e.g. a rotating file.
func NewWriterLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
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

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithAttempt adds an attempt field to the logger.
func (l *Logger) WithAttempt(attempt int) *Logger {
	return &Logger{
		Logger: l.Logger.With("attempt", attempt),
	}
}

// LogRun logs a completed clustering run.
func (l *Logger) LogRun(ctx context.Context, documents, k, attempts int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"documents", documents,
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"documents", documents,
			"k", k,
			"attempts", attempts,
		)
	}
}

// LogAttempt logs the outcome of a single attempt. An attempt with fewer than
// k non-empty clusters is logged as degenerate. Use WithK and WithAttempt to
// attach the cluster count and attempt number.
func (l *Logger) LogAttempt(ctx context.Context, passes, nonEmpty, k int, converged bool) {
	if nonEmpty < k {
		l.WarnContext(ctx, "degenerate partition, restarting",
			"passes", passes,
			"non_empty", nonEmpty,
		)
	} else {
		l.DebugContext(ctx, "attempt accepted",
			"passes", passes,
			"converged", converged,
		)
	}
}

// LogPass logs a single assignment/update pass.
func (l *Logger) LogPass(ctx context.Context, pass, reassigned int) {
	l.DebugContext(ctx, "pass completed",
		"pass", pass,
		"reassigned", reassigned,
	)
}
