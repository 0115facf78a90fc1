package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("cricktrackr/internal/interfaces/httpapi")

// startHandlerSpan opens a child span for a handler. Requests that reached
// the handler without a server span (untraced paths) get a no-op span.
func startHandlerSpan(r *http.Request, operation string) (context.Context, trace.Span) {
	ctx := r.Context()
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}

	attrs := []attribute.KeyValue{attribute.String("http.request.method", r.Method)}
	if rctx := chi.RouteContext(ctx); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			attrs = append(attrs, attribute.String("http.route", pattern))
		}
	}
	return apiTracer.Start(ctx, "httpapi.Handler."+operation, trace.WithAttributes(attrs...))
}

// recordSpanError marks the active span failed for server-side errors and
// only annotates it for client errors.
func recordSpanError(ctx context.Context, status int, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() || err == nil {
		return
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusInternalServerError {
		span.RecordError(err)
		span.SetStatus(codes.Error, http.StatusText(status))
		return
	}
	span.AddEvent("client_error", trace.WithAttributes(attribute.String("error.message", err.Error())))
}
