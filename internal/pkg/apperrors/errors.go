package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrUpstreamFailure  = errors.New("upstream failure")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrNoPasswordSet      = errors.New("no password set for this account")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student already exists")
	ErrNoEmail         = errors.New("no email registered for this account")
)

// Faculty errors
var (
	ErrFacultyNotFound = errors.New("faculty not found")
	ErrFacultyExists   = errors.New("faculty already exists")
)

// Password reset errors
var (
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// Project errors
var (
	ErrProjectTypeExists = errors.New("project type already uploaded for this student")
	ErrReportNotFound    = errors.New("report file not found")
)

// Department access errors
var (
	ErrUnknownDepartment = errors.New("unknown department code")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewUpstreamError wraps a lower-level failure with a generic message.
// The cause is kept for server-side logging, never for the response body.
func NewUpstreamError(cause error, message string) error {
	return &CustomError{Err: errors.Join(ErrUpstreamFailure, cause), Message: message}
}
