package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type contextKey struct{}

// Setup creates a new slog.Logger writing to stderr with a text
// handler. If debug is true the logger logs at Debug level, otherwise
// Info. Every logger carries a run_id attribute so that log lines from
// one invocation can be correlated, which matters for batch runs that
// emit one debug line per address.
func Setup(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With("run_id", uuid.NewString())
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the logger from the context.
// If no logger is found in the context, returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
