package manager

import (
	"errors"
	"net/http"
	"path/filepath"
)

// modelUnavailableError signals that no model is loaded; predictions are
// disabled until the process is restarted with a valid artifact.
type modelUnavailableError struct {
	path   string
	reason string
}

func (e modelUnavailableError) Error() string {
	msg := "model not loaded"
	if e.path != "" {
		msg += ": " + filepath.Base(e.path)
	}
	if e.reason != "" {
		msg += ": " + e.reason
	}
	return msg
}

func (e modelUnavailableError) StatusCode() int { return http.StatusServiceUnavailable }

// ErrModelUnavailable constructs a modelUnavailableError.
func ErrModelUnavailable(path, reason string) error {
	return modelUnavailableError{path: path, reason: reason}
}

// IsModelUnavailable reports whether err indicates the model failed to load.
func IsModelUnavailable(err error) bool {
	var e modelUnavailableError
	return errors.As(err, &e)
}

// invalidInputError wraps a form value outside its bounds.
type invalidInputError struct{ err error }

func (e invalidInputError) Error() string   { return "invalid input: " + e.err.Error() }
func (e invalidInputError) Unwrap() error   { return e.err }
func (e invalidInputError) StatusCode() int { return http.StatusBadRequest }

// IsInvalidInput reports whether err was caused by out-of-bounds input.
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}

// predictionError wraps a failure raised by the model for a given row.
type predictionError struct{ err error }

func (e predictionError) Error() string   { return "prediction failed: " + e.err.Error() }
func (e predictionError) Unwrap() error   { return e.err }
func (e predictionError) StatusCode() int { return http.StatusUnprocessableEntity }

// ErrNonFinite is wrapped when the model output or the production estimate
// overflows to ±Inf or NaN.
var ErrNonFinite = errors.New("result is not a finite number")

// IsPredictionFailed reports whether the model rejected the row.
func IsPredictionFailed(err error) bool {
	var e predictionError
	return errors.As(err, &e)
}
