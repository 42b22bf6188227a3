package apiclient

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/serhatcn/apikit/apiclient"

// newTraceID is the default request-ID generator.
func newTraceID() string {
	return uuid.NewString()
}

type requestIDKey struct{}

// WithRequestID stores a request ID in the context; outgoing requests
// without an explicit request-ID header pick it up.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext retrieves the request ID from context, or empty.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Metric instruments are created lazily through the global meter provider,
// so they are no-ops unless the host application installed one.
var (
	metricsOnce     sync.Once
	requestCounter  metric.Int64Counter
	requestDuration metric.Float64Histogram
)

func instruments() (metric.Int64Counter, metric.Float64Histogram) {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		requestCounter, _ = meter.Int64Counter("apiclient.requests",
			metric.WithDescription("Completed request dispatches"))
		requestDuration, _ = meter.Float64Histogram("apiclient.request.duration",
			metric.WithDescription("Request dispatch duration"),
			metric.WithUnit("ms"))
	})
	return requestCounter, requestDuration
}

// startRequestSpan opens the dispatch span.
func startRequestSpan(ctx context.Context, method, url string) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, "apiclient.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", url),
		),
	)
}

// recordAttempt marks the start of one attempt on the dispatch span.
func recordAttempt(span trace.Span, attempt int) {
	span.AddEvent("attempt", trace.WithAttributes(attribute.Int("attempt", attempt)))
}

// finishRequest records terminal span status and metrics for a dispatch.
func finishRequest(ctx context.Context, span trace.Span, method, url string, attempts int, start time.Time, status int, err error) {
	span.SetAttributes(attribute.Int("attempts", attempts))
	outcome := "success"
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		outcome = "error"
	} else {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}

	counter, duration := instruments()
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("outcome", outcome),
	)
	if counter != nil {
		counter.Add(ctx, 1, attrs)
	}
	if duration != nil {
		duration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
	}
}
