package apperrors

import (
	"errors"
	"sort"
	"strings"
)

// Error kinds. Every error returned by a service wraps exactly one of these.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
)

// Entity errors
var (
	ErrAdminNotFound      = NewResourceNotFoundError("Admin not found")
	ErrTeacherNotFound    = NewResourceNotFoundError("Teacher not found")
	ErrStudentNotFound    = NewResourceNotFoundError("Student not found")
	ErrEmailAlreadyExists = NewConflictError("Email already exists")
	ErrStudentIDExists    = NewConflictError("Student ID already exists")
	ErrDuplicateValue     = NewConflictError("Duplicate value exists")
)

// Login errors. Both are reported as not-found to the caller.
var (
	ErrInvalidEmail    = NewResourceNotFoundError("Invalid email")
	ErrInvalidPassword = NewResourceNotFoundError("Invalid password")
)

// Authentication errors
var (
	ErrUserNotFound = NewUnauthorizedError("User not found")
	ErrAccessDenied = NewForbiddenError("Access denied")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewUnauthorizedError creates a new custom error for failed authentication with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message carried by err, or fallback when
// err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// ValidationError carries one message per offending request field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for field. The first message recorded for a field wins.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
	return e
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
