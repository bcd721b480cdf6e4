// Package telemetry wires OpenTelemetry tracing around the request paths
// named in §4 (FindAsset, source registration), exporting spans to stdout
// for local inspection.
//
// Grounded on the teacher's telemetry/telemetry.go: a single InitTelemetry
// that builds a TracerProvider around an exporter and installs it globally,
// returning a shutdown func. Simplified to the stdout exporter only — the
// teacher's optional OTLP/gRPC branch pulls in a transport this module has
// no use for without a real collector endpoint to point at.
package telemetry

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("telemetry")

// Init sets up a stdout-exporting TracerProvider identified as serviceName
// and installs it as the global provider, unless DISABLE_TELEMETRY=true.
// The returned func flushes and shuts the provider down; callers defer it.
func Init(ctx context.Context, serviceName string) (func(), error) {
	if os.Getenv("DISABLE_TELEMETRY") == "true" {
		log.Info("telemetry disabled via DISABLE_TELEMETRY")
		return func() {}, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
	)

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("telemetry initialized")
	return func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warnw("telemetry shutdown failed", "err", err)
		}
	}, nil
}

// Tracer returns the named tracer from whatever provider is currently
// installed globally (a no-op one until Init runs, or always, if disabled).
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
