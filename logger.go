package kinetgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kinetgo-specific helpers.
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
// This is the store's default.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogAddEntity logs an entity insertion.
func (l *Logger) LogAddEntity(index int, err error) {
	if err != nil {
		l.Error("add entity failed",
			"error", err,
		)
	} else {
		l.Debug("entity added",
			"index", index,
		)
	}
}

// LogStep logs one integration step (position, velocity or force pass).
func (l *Logger) LogStep(op string, entities int, duration time.Duration) {
	l.Debug("integration step completed",
		"op", op,
		"entities", entities,
		"duration", duration,
	)
}

// LogCollisionScan logs a pairwise collision scan.
func (l *Logger) LogCollisionScan(pairs int, duration time.Duration) {
	l.Debug("collision scan completed",
		"pairs", pairs,
		"duration", duration,
	)
}

// LogSpatialQuery logs a radius query.
func (l *Logger) LogSpatialQuery(matches int, duration time.Duration) {
	l.Debug("spatial query completed",
		"matches", matches,
		"duration", duration,
	)
}
