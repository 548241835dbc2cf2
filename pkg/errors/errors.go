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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Registry errors
	ErrInvalidResolver ErrorCode = "INVALID_RESOLVER"
	ErrResolution      ErrorCode = "RESOLUTION"

	// Factory errors
	ErrTypeNotFound ErrorCode = "TYPE_NOT_FOUND"
	ErrTypeInvalid  ErrorCode = "TYPE_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// NotatError represents a structured error with code and details
type NotatError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NotatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NotatError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NotatError) Is(target error) bool {
	var targetErr *NotatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NotatError with the given code and message
func New(code ErrorCode, message string) *NotatError {
	return &NotatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NotatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NotatError {
	return &NotatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NotatError
func Wrap(err error, code ErrorCode, message string) *NotatError {
	if err == nil {
		return nil
	}
	return &NotatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NotatError {
	if err == nil {
		return nil
	}
	return &NotatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NotatError) WithDetail(key string, value interface{}) *NotatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *NotatError) WithDetails(details map[string]interface{}) *NotatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var notatErr *NotatError
	if errors.As(err, &notatErr) {
		return notatErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NotatError
func GetErrorCode(err error) ErrorCode {
	var notatErr *NotatError
	if errors.As(err, &notatErr) {
		return notatErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NotatError
func GetErrorDetails(err error) map[string]interface{} {
	var notatErr *NotatError
	if errors.As(err, &notatErr) {
		return notatErr.Details
	}
	return nil
}
