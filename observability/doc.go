// Package observability bootstraps OpenTelemetry tracing and metrics over
// OTLP HTTP. Once installed, the apiclient package's per-dispatch spans and
// metrics flow through the global providers.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
package observability
