// Package tracing configures the global OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/dmitrijs2005/recordsync/internal/logging"
)

const (
	ExporterNone = "none"
	ExporterGRPC = "grpc"
	ExporterHTTP = "http"
)

type Options struct {
	ServiceName string
	// Exporter is one of ExporterNone, ExporterGRPC or ExporterHTTP.
	// Endpoints come from the standard OTEL_EXPORTER_OTLP_* variables.
	Exporter    string
	SampleRatio float64
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs a tracer provider according to opts and returns its shutdown
// function. With ExporterNone, or when the exporter cannot be created, only
// the propagator is installed and spans go to the default no-op provider.
func Init(ctx context.Context, opts Options, logger logging.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if opts.Exporter == "" || opts.Exporter == ExporterNone {
		logger.Debug(ctx, "tracing disabled")
		return noopShutdown, nil
	}

	exporter, err := newExporter(ctx, opts.Exporter)
	if err != nil {
		logger.Error(ctx, "tracing init failed", "exporter", opts.Exporter, "error", err)
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(opts.ServiceName)),
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		_ = exporter.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(Sampler(opts.SampleRatio)),
	)
	otel.SetTracerProvider(tp)

	logger.Info(ctx, "tracing configured", "exporter", opts.Exporter, "sample_ratio", opts.SampleRatio)

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, kind string) (*otlptrace.Exporter, error) {
	switch kind {
	case ExporterGRPC:
		return otlptracegrpc.New(ctx)
	case ExporterHTTP:
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported exporter: %s", kind)
	}
}

// Sampler returns a parent-based ratio sampler. The ratio is clamped to [0, 1].
func Sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}
