package resolve_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tim-lang/tir/resolve"
)

func TestTraceDebug_NilLoggerIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		resolve.TraceDebug(context.Background(), nil, "resolve: module registered")
	})
}

func TestTraceDebug_WritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	resolve.TraceDebug(context.Background(), logger, "resolve: imports bound", slog.Int("modules", 3))

	assert.Contains(t, buf.String(), "resolve: imports bound")
	assert.Contains(t, buf.String(), "modules=3")
}

func TestTraceDebug_SuppressedAboveDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	resolve.TraceDebug(context.Background(), logger, "finish: statics bound")

	assert.Empty(t, buf.String())
}
