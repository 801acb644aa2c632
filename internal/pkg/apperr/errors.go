// Package apperr defines the single error taxonomy used by the
// lifecycle usecases. Every precondition failure is a ValidationError
// carrying a human-readable message and an HTTP-style status code;
// anything else surfaces as a generic internal error at the handler
// boundary.
package apperr

import (
	"errors"
	"net/http"
)

// ValidationError is a precondition failure raised by a guard function.
type ValidationError struct {
	Message string
	Code    int
}

func (e *ValidationError) Error() string {
	return e.Message
}

// New creates a ValidationError with the default 400 code
func New(message string) *ValidationError {
	return &ValidationError{Message: message, Code: http.StatusBadRequest}
}

// NotFound creates a ValidationError for a missing entity
func NotFound(message string) *ValidationError {
	return &ValidationError{Message: message, Code: http.StatusNotFound}
}

// Unauthorized creates a ValidationError for a failed authentication
func Unauthorized(message string) *ValidationError {
	return &ValidationError{Message: message, Code: http.StatusUnauthorized}
}

// Forbidden creates a ValidationError for an authorization failure
func Forbidden(message string) *ValidationError {
	return &ValidationError{Message: message, Code: http.StatusForbidden}
}

// Conflict creates a ValidationError for a uniqueness violation
func Conflict(message string) *ValidationError {
	return &ValidationError{Message: message, Code: http.StatusConflict}
}

// AsValidation unwraps err into a ValidationError, if it is one
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
