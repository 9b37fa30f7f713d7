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

	// Introspection errors
	ErrUnsupportedKind      ErrorCode = "UNSUPPORTED_KIND"
	ErrUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	ErrExactConversion      ErrorCode = "EXACT_CONVERSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrDescInvalid ErrorCode = "DESC_INVALID"
)

// ConfvalError represents a structured error with code and details
type ConfvalError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConfvalError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConfvalError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ConfvalError) Is(target error) bool {
	var targetErr *ConfvalError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConfvalError with the given code and message
func New(code ErrorCode, message string) *ConfvalError {
	return &ConfvalError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConfvalError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConfvalError {
	return &ConfvalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConfvalError
func Wrap(err error, code ErrorCode, message string) *ConfvalError {
	if err == nil {
		return nil
	}
	return &ConfvalError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConfvalError {
	if err == nil {
		return nil
	}
	return &ConfvalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConfvalError) WithDetail(key string, value interface{}) *ConfvalError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ConfvalError) WithDetails(details map[string]interface{}) *ConfvalError {
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
	var confvalErr *ConfvalError
	if errors.As(err, &confvalErr) {
		return confvalErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConfvalError
func GetErrorCode(err error) ErrorCode {
	var confvalErr *ConfvalError
	if errors.As(err, &confvalErr) {
		return confvalErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConfvalError
func GetErrorDetails(err error) map[string]interface{} {
	var confvalErr *ConfvalError
	if errors.As(err, &confvalErr) {
		return confvalErr.Details
	}
	return nil
}
