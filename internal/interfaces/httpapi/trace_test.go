package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestStartHandlerSpan_UntracedRequestGetsNoopSpan(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	ctx, span := startHandlerSpan(req, "ListMatches")
	defer span.End()

	if span.IsRecording() {
		t.Fatalf("expected non-recording span without a parent")
	}
	if ctx != req.Context() {
		t.Fatalf("expected request context to be returned unchanged")
	}
}

func TestRecordSpanError_IgnoresNonRecordingSpan(t *testing.T) {
	t.Parallel()

	ctx := trace.ContextWithSpan(context.Background(), trace.SpanFromContext(context.Background()))
	recordSpanError(ctx, http.StatusServiceUnavailable, errors.New("provider down"))
	recordSpanError(ctx, http.StatusBadRequest, nil)
}
