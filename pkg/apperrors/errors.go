package apperrors

import "fmt"

// FieldError describes a single violated input constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing input (HTTP 400).
// Details carries one entry per violated field when known.
type ValidationError struct {
	Message string
	Details []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with optional per-field details
func NewValidation(message string, details ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// NotFoundError reports that a referenced id does not resolve (HTTP 404)
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound creates a NotFoundError with a formatted message
func NewNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a business-rule violation (HTTP 400)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError with a formatted message
func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
