package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := rec.Body.String(); strings.Contains(got, "password") {
		t.Fatalf("internal error leaked: %s", got)
	}
}

func TestClassifyError_StatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		want   int
		reason string
	}{
		{err: usecase.ErrInvalidInput, want: http.StatusBadRequest, reason: "invalidInput"},
		{err: fmt.Errorf("wrap: %w", usecase.ErrNotFound), want: http.StatusNotFound, reason: "notFound"},
		{err: usecase.ErrProviderUnavailable, want: http.StatusServiceUnavailable, reason: "providerUnavailable"},
		{err: fmt.Errorf("%w: list: %w", usecase.ErrStoreUnavailable, errors.New("conn refused")), want: http.StatusServiceUnavailable, reason: "storeUnavailable"},
		{err: errors.New("boom"), want: http.StatusInternalServerError, reason: "internalError"},
	}
	for _, tt := range tests {
		got := classifyError(tt.err)
		if got.httpStatus != tt.want || got.reason != tt.reason {
			t.Fatalf("classifyError(%v)=%d/%s want=%d/%s", tt.err, got.httpStatus, got.reason, tt.want, tt.reason)
		}
	}
}
