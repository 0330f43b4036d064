package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
)

// Account errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPhoneAlreadyExists    = errors.New("phone number already exists")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentEmailExists   = errors.New("student email already exists")
	ErrNoCounsellors        = errors.New("no counsellors available")
	ErrInvalidStudentPatch  = errors.New("invalid student update")
	ErrMalformedStudentID   = errors.New("malformed student ID")
)

// CustomError represents application-specific errors with a
// caller-facing message on top of a sentinel error.
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

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewUnauthorizedError creates an authentication error with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{Err: ErrInvalidCredentials, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewCustomError creates a CustomError wrapping err
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}
