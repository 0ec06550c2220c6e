package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest, ErrOutOfRange:
		return http.StatusBadRequest
	case ErrNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrOutOfRange
	ErrNotImplemented
	ErrInternal
)

// Error constructors
func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewOutOfRange reports an index outside a collection's bounds.
func NewOutOfRange(index, length int) *AppError {
	return &AppError{
		Code:    ErrOutOfRange,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, length),
	}
}

// NewNotImplemented marks a feature that is a deliberate placeholder, so
// callers can tell "feature absent" apart from "nothing to do".
func NewNotImplemented(feature string) *AppError {
	return &AppError{
		Code:    ErrNotImplemented,
		Message: fmt.Sprintf("%s is not implemented", feature),
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// Common errors
func NotFound(resource string, err error) *AppError {
	return NewNotFound(resource, err)
}

func BadRequest(message string, err error) *AppError {
	return NewBadRequest(message, err)
}

func Internal(err error) *AppError {
	return NewInternal(err)
}

// IsOutOfRange reports whether err is an out-of-range AppError.
func IsOutOfRange(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrOutOfRange
}

// IsNotImplemented reports whether err is a not-implemented AppError.
func IsNotImplemented(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrNotImplemented
}
