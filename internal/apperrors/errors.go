// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these types; handlers map them to HTTP statuses.
package apperrors

import "errors"

// ValidationError signals malformed or missing input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals a referenced entity that does not exist (HTTP 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError signals a uniqueness violation (HTTP 409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Validation returns a new ValidationError with the given message.
func Validation(msg string) error { return &ValidationError{Message: msg} }

// NotFound returns a new NotFoundError with the given message.
func NotFound(msg string) error { return &NotFoundError{Message: msg} }

// Conflict returns a new ConflictError with the given message.
func Conflict(msg string) error { return &ConflictError{Message: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
