package errors

import "fmt"

// ErrorType classifies application errors so the transport layer can map
// them to responses without string matching.
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates the caller violated a precondition.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates an unexpected internal failure.
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeExternal indicates a data or search provider was
	// unreachable or returned a malformed payload.
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError is the typed error value surfaced across layer boundaries.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == t
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewInternalError creates an internal error wrapping its cause.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// NewExternalError creates a provider-failure error wrapping its cause.
func NewExternalError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeExternal, Message: message, Err: err}
}
