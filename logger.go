package peergo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with peergo-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLoad logs the outcome of a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, name string, loaded, dropped int, err error) {
	if err != nil {
		l.WarnContext(ctx, "snapshot load degraded to empty dataset",
			"snapshot", name,
			"error", err,
		)
		return
	}
	if dropped > 0 {
		l.WarnContext(ctx, "snapshot loaded with dropped records",
			"snapshot", name,
			"loaded", loaded,
			"dropped", dropped,
		)
		return
	}
	l.InfoContext(ctx, "snapshot loaded",
		"snapshot", name,
		"loaded", loaded,
	)
}

// LogReload logs a snapshot reload (atomic swap of the live dataset).
func (l *Logger) LogReload(ctx context.Context, name string, loaded int, err error) {
	if err != nil {
		l.WarnContext(ctx, "snapshot reload kept degraded dataset",
			"snapshot", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "snapshot reloaded",
		"snapshot", name,
		"loaded", loaded,
	)
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, hasASN bool, nameLen, results int) {
	l.DebugContext(ctx, "search completed",
		"asn_criterion", hasASN,
		"name_query_len", nameLen,
		"results", results,
	)
}
