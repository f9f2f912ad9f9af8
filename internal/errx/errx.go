package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// SystemErrorMessage is the user-facing fallback when internal errors occur.
const SystemErrorMessage = "internal server error"

// AppError wraps an underlying error with an HTTP status and a message safe
// to show end users. Handlers unwrap it at the response boundary;
// everything below just returns errors.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{Err: err, Status: status, Message: message}
}

// BadRequest marks a precondition failure the caller can correct.
func BadRequest(err error, message string) *AppError {
	return New(err, http.StatusBadRequest, message)
}

// NotFound marks a missing resource.
func NotFound(err error, message string) *AppError {
	return New(err, http.StatusNotFound, message)
}

// Is reports whether the target matches the underlying error or the
// AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// StatusOf resolves the HTTP status to respond with for err, defaulting to
// 500 for anything that is not an AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf resolves the safe user-facing message for err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SystemErrorMessage
}
