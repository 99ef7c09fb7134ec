package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"

	// Execution errors
	ErrUnknownScript    ErrorCode = "UNKNOWN_SCRIPT"
	ErrCyclicDependency ErrorCode = "CYCLIC_DEPENDENCY"
	ErrCommandFailed    ErrorCode = "COMMAND_FAILED"
	ErrInvalidSelection ErrorCode = "INVALID_SELECTION"

	// Repository errors
	ErrCloneFailed    ErrorCode = "CLONE_FAILED"
	ErrUpdateFailed   ErrorCode = "UPDATE_FAILED"
	ErrCheckoutFailed ErrorCode = "CHECKOUT_FAILED"
)

// BuildError represents a structured error with code and details
type BuildError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BuildError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BuildError) Is(target error) bool {
	var targetErr *BuildError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BuildError with the given code and message
func New(code ErrorCode, message string) *BuildError {
	return &BuildError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BuildError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BuildError {
	return &BuildError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BuildError
func Wrap(err error, code ErrorCode, message string) *BuildError {
	if err == nil {
		return nil
	}
	return &BuildError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BuildError {
	if err == nil {
		return nil
	}
	return &BuildError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BuildError) WithDetail(key string, value interface{}) *BuildError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		return buildErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BuildError
func GetErrorCode(err error) ErrorCode {
	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		return buildErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BuildError
func GetErrorDetails(err error) map[string]interface{} {
	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		return buildErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status. Each error kind gets
// its own status so wrappers can tell a bad selection from a failed build.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case ErrInvalidSelection:
		return 2
	case ErrUnknownScript:
		return 3
	case ErrConfigLoad, ErrConfigMissing:
		return 4
	case ErrCloneFailed, ErrUpdateFailed, ErrCheckoutFailed:
		return 5
	case ErrCommandFailed:
		return 6
	case ErrCyclicDependency:
		return 7
	default:
		return 1
	}
}
