// Package tracing installs the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"

	"waffer/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

// Params holds dependencies for the tracer provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTracerProvider installs a global tracer provider exporting finished spans
// to the logger. A no-op provider is used when tracing is disabled.
func NewTracerProvider(params Params) trace.TracerProvider {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if params.Config.Tracing == nil || !params.Config.Tracing.Enabled {
		provider := noop.NewTracerProvider()
		otel.SetTracerProvider(provider)

		return provider
	}

	res := resource.NewSchemaless(
		semconv.ServiceName(params.Config.Env.ServiceName),
		semconv.DeploymentEnvironment(params.Config.Env.Env),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(NewLogExporter(params.Logger)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	params.Logger.Info("Tracing enabled")

	return provider
}
