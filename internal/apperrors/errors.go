package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal is a generic error for unexpected failures.
var ErrInternal = errors.New("internal error")

// ErrPersistence indicates a failed write to the record store. Writes are rolled back.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewPersistenceError wraps a storage failure so callers can match it with errors.Is(err, ErrPersistence).
func NewPersistenceError(message string, err error) *AppError {
	if err == nil {
		return &AppError{Code: 500, Message: message, Err: ErrPersistence}
	}
	return &AppError{Code: 500, Message: message, Err: fmt.Errorf("%w: %w", ErrPersistence, err)}
}
