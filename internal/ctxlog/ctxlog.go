// Package ctxlog carries a *slog.Logger through context.Context. The app
// attaches its configured logger once per run and the loader and builder
// read it back with FromContext. A context without a logger yields
// slog.Default, so callers holding a bare context still get output.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached by WithLogger, or slog.Default
// when ctx carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
