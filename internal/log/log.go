// Package log carries a `*slog.Logger` in a `context.Context` by way of
// logr, so the same context also serves logr-based libraries.
package log

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-logr/logr"
)

// New builds a text logger. `verbose` lowers the level from info to debug.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Context(ctx context.Context, logger *slog.Logger) context.Context {
	return logr.NewContextWithSlogLogger(ctx, logger)
}

// FromContext returns the context's logger, falling back to
// `slog.Default()` if there is none.
func FromContext(ctx context.Context) (logger *slog.Logger) {
	if logger = logr.FromContextAsSlogLogger(ctx); logger == nil {
		logger = slog.Default()
	}
	return
}
