// Package logging carries a request- or job-scoped *slog.Logger through a
// context.Context.
package logging

import (
	"context"
	"log/slog"
)

// contextKey is a private type to avoid context key collisions.
type contextKey string

const loggerKey = contextKey("logger")

// IntoCtx returns a context carrying the given logger.
func IntoCtx(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the scoped logger from the context, falling back to the
// process default logger when none was attached.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
