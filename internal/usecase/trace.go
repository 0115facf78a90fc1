package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("cricktrackr/internal/usecase")

// startUsecaseSpan only opens a span inside an existing trace; untraced
// callers get the context's no-op span back.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func annotateBatch(span trace.Span, report BatchReport) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Int("batch.success", report.SuccessCount),
		attribute.Int("batch.skipped", report.SkippedCount),
		attribute.Int("batch.failed", report.FailedCount),
	)
}
