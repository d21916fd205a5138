package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the HTTP layer.
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func NewInternalError(msg string) error {
	return &BookingError{Code: CodeInternal, Message: msg}
}

// CodeOf extracts the error code, defaulting to internal for untyped errors.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}
