package httpapi

import (
	"encoding/json"
	"net/http"

	"yieldd/internal/manager"
	"yieldd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// statusFor maps well-known manager errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case manager.IsModelUnavailable(err):
		return http.StatusServiceUnavailable
	case manager.IsInvalidInput(err):
		return http.StatusBadRequest
	case manager.IsPredictionFailed(err):
		return http.StatusUnprocessableEntity
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// outcomeFor labels a prediction result for metrics.
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return "success"
	case manager.IsModelUnavailable(err):
		return "unavailable"
	case manager.IsInvalidInput(err):
		return "invalid_input"
	case manager.IsPredictionFailed(err):
		return "model_error"
	default:
		return "error"
	}
}

// errUnavailable is reported when a submission arrives without a model.
func errUnavailable(svc Service) error {
	return manager.ErrModelUnavailable("", svc.Warning())
}
