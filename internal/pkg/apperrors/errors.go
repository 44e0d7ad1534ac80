package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidEmail     = errors.New("invalid institute email address")
	ErrBadRequest       = errors.New("bad request")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Persistence errors: store faults are reported generically, never
	// differentiated by cause and never retried here.
	ErrPersistence = errors.New("persistence failure")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	// ErrIncompleteRegistration marks an account that was pre-seeded but
	// never completed registration (no email on record). Login rejects it
	// with a flag routing the caller to registration.
	ErrIncompleteRegistration = errors.New("registration incomplete")
)

// Auth errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrUnauthorized = errors.New("authentication required")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a caller-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewPersistenceError wraps a store fault behind the generic persistence
// sentinel so callers cannot branch on the cause.
func NewPersistenceError(err error) error {
	return &CustomError{
		Err:     ErrPersistence,
		Message: "persistence failure: " + err.Error(),
	}
}
