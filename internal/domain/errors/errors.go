// Package errors defines the application error taxonomy. Every error that
// reaches the HTTP surface is rendered as a status code plus a short
// human-readable reason, never as a structured error object.
package errors

import (
	"net/http"

	"stundenplan/internal/errors"
)

// Status codes outside the stdlib set, kept because deployed frontends
// branch on them.
const (
	// StatusInvalidEmail rejects registrations outside the school domain.
	StatusInvalidEmail = 420
	// StatusUsernameTaken rejects duplicate usernames across confirmed and
	// pending registrations.
	StatusUsernameTaken = 422
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration errors. Messages are the exact wire texts deployed
	// frontends display.
	ErrInvalidEmailDomain = NewBaseError(
		StatusInvalidEmail,
		"INVALID_EMAIL",
		"Invalid email address!",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		StatusUsernameTaken,
		"USERNAME_TAKEN",
		"Username already taken!",
		"",
	)

	ErrStudentCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"STUDENT_CREATION_FAILED",
		"Could not create the user!",
		"",
	)

	// Confirmation and lookup errors.
	ErrConfirmationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIRMATION_NOT_FOUND",
		"That user can't be found!",
		"",
	)

	ErrStudentNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDENT_NOT_FOUND",
		"That user can't be found!",
		"",
	)

	// Gate errors. 401 is reserved for a missing or structurally broken
	// token, 403 covers bad signatures, expiry and ownership mismatches.
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Authorization token missing or malformed",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"Authorization token invalid or expired",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"Token subject does not match the requested resource",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request payload",
		"",
	)
)

// NewDatabaseExecuteError wraps an infrastructure failure into a 500-class
// AppError while keeping the cause in the details for logging.
func NewDatabaseExecuteError(cause error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		message,
		cause.Error(),
	)
}
