package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("scouting-board/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// tracedSpanPrefixes lists the span names that get their own span. Helpers
// such as writeJSON stay inside the handler span.
var tracedSpanPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.RequireAuth",
}

// startSpan only creates child spans: routes filtered out of otelhttp (for
// example /healthz) carry no parent and get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// recordSpanError marks the active span failed for server errors and tags
// client errors with their reason only.
func recordSpanError(ctx context.Context, err error, mapped mappedError) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("error.reason", mapped.Reason),
		attribute.Int("http.response.status_code", mapped.HTTPStatus),
	)
	if mapped.HTTPStatus >= 500 {
		span.RecordError(err)
		span.SetStatus(codes.Error, mapped.Reason)
	}
}
