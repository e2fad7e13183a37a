package observability

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/d60-Lab/network/config"
)

// Init wires error reporting and tracing when configured. Both are
// optional; the returned shutdown func is always safe to call.
func Init(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			return nil, err
		}
	}

	if cfg.Tracing.Endpoint == "" {
		return func(context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		}, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(
		otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint),
		otlptracehttp.WithInsecure(),
	))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		sentry.Flush(2 * time.Second)
		return err
	}, nil
}
