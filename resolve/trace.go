package resolve

import (
	"context"
	"log/slog"
)

// TraceDebug logs a resolver phase-boundary message at Debug level when
// logger is non-nil and enabled, and is a no-op otherwise. Phase boundaries
// are the only events this module traces (spec.md §5's single-threaded,
// synchronous model has no concurrent operations worth instrumenting beyond
// "which phase just finished"), so the helper lives here rather than as a
// general-purpose logging package.
func TraceDebug(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
