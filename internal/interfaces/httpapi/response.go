package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "cricktrackr"
)

// envelope follows the Google JSON style guide: exactly one of Data or Error.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	target     error
	httpStatus int
	reason     string
	status     string
}

var internalErrorClass = errorClass{httpStatus: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

// errorClasses is checked in order; the first sentinel found in the chain wins.
var errorClasses = []errorClass{
	{target: usecase.ErrInvalidInput, httpStatus: http.StatusBadRequest, reason: "invalidInput", status: "INVALID_ARGUMENT"},
	{target: usecase.ErrNotFound, httpStatus: http.StatusNotFound, reason: "notFound", status: "NOT_FOUND"},
	{target: usecase.ErrProviderUnavailable, httpStatus: http.StatusServiceUnavailable, reason: "providerUnavailable", status: "UNAVAILABLE"},
	{target: usecase.ErrStoreUnavailable, httpStatus: http.StatusServiceUnavailable, reason: "storeUnavailable", status: "UNAVAILABLE"},
}

func classifyError(err error) errorClass {
	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			return class
		}
	}
	return internalErrorClass
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{APIVersion: apiVersion, Data: data})
}

// writeError renders err with the status of its sentinel. Unclassified
// errors become a 500 whose body never carries the internal message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classifyError(err)
	recordSpanError(ctx, class.httpStatus, err)

	message := err.Error()
	if class.httpStatus == http.StatusInternalServerError {
		message = "internal server error"
	}
	writeJSON(w, class.httpStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.httpStatus,
			Message: message,
			Status:  class.status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.reason, Message: message}},
		},
	})
}

// writeStatusError renders a transport-level error that has no sentinel,
// such as a 404 for an unknown route or a 405.
func writeStatusError(w http.ResponseWriter, httpStatus int, reason, status, message string) {
	writeJSON(w, httpStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    httpStatus,
			Message: message,
			Status:  status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: reason, Message: message}},
		},
	})
}
