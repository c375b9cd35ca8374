package tracing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"waffer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx/fxtest"
)

func TestLogExporter_ExportSpans(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(NewLogExporter(logger)))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	_, span := provider.Tracer("test").Start(context.Background(), "mapview.Reconcile")
	span.SetAttributes(attribute.Int("offers", 5), attribute.Bool("stale", false))
	span.End()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Span finished", record["msg"])
	assert.Equal(t, "mapview.Reconcile", record["span"])
	assert.InDelta(t, 5, record["offers"], 0)
	assert.Equal(t, false, record["stale"])
	assert.NotEmpty(t, record["trace_id"])
}

func TestNewTracerProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled := NewTracerProvider(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	_, isSDK := disabled.(*sdktrace.TracerProvider)
	assert.False(t, isSDK)

	lc := fxtest.NewLifecycle(t)
	enabled := NewTracerProvider(Params{
		Lc:     lc,
		Config: &config.Config{Tracing: &config.TracingConfig{Enabled: true}},
		Logger: logger,
	})
	_, isSDK = enabled.(*sdktrace.TracerProvider)
	assert.True(t, isSDK)

	lc.RequireStart().RequireStop()
}
