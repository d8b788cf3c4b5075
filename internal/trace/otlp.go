// Package trace records shell interactions as OpenTelemetry spans.
package trace

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"fitjourney/internal/config"
)

const instrumentationName = "fitjourney/ui"

// NewRecorder creates a Recorder that exports to the configured OTLP endpoint.
// With no endpoint configured the recorder is backed by a no-op provider.
func NewRecorder(ctx context.Context, cfg config.TracingConfig) (*Recorder, error) {
	if cfg.Endpoint == "" {
		return NewRecorderWithProvider(noop.NewTracerProvider()), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "fitjourney"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	r := NewRecorderWithProvider(provider)
	r.shutdown = provider.Shutdown
	return r, nil
}

// NewRecorderWithProvider wraps an existing tracer provider.
func NewRecorderWithProvider(tp oteltrace.TracerProvider) *Recorder {
	return &Recorder{tracer: tp.Tracer(instrumentationName)}
}

// Shutdown flushes pending spans. Safe on a nil or no-op recorder.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.shutdown == nil {
		return nil
	}
	return r.shutdown(ctx)
}

// LogErrors routes OpenTelemetry's internal errors (failed exports, dropped
// spans) to log instead of stderr, which the TUI owns.
func LogErrors(log logrus.FieldLogger) {
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.WithError(err).Warn("trace export")
	}))
}
