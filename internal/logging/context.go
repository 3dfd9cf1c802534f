package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger attaches logger to ctx. The CLI stores the logger built from
// --verbose and --quiet this way before a command runs, and the runner
// and config loader read it back with FromContext.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached by WithLogger. Library callers
// that never attach one get the process default, so scans started outside
// the CLI still log.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, _ := ctx.Value(loggerKey{}).(*log.Logger); logger != nil {
		return logger
	}
	return Default()
}
