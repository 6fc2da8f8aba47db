// Package tracing configures the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"

	"zeneasy/config"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

// Params defines the dependencies for the tracer provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New installs a global tracer provider exporting over OTLP/HTTP. Without a
// configured endpoint it returns a no-op provider.
func New(params Params) (trace.TracerProvider, error) {
	cfg := params.Config.Tracing
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Info("Tracing disabled: no OTLP endpoint configured")

		return noop.NewTracerProvider(), nil
	}

	ctx := context.Background()

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OTLP exporter")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(params.Config.Env.ServiceName),
			semconv.DeploymentEnvironment(params.Config.Env.Env),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build trace resource")
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	params.Logger.Info("Tracing initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.Float64("sampleRatio", ratio),
	)

	return tp, nil
}
