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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Path resolution errors
	ErrPathNotFound ErrorCode = "PATH_NOT_FOUND"

	// Copy errors
	ErrCopyFailed ErrorCode = "COPY_FAILED"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Cleanup errors
	ErrCleanupFailed ErrorCode = "CLEANUP_FAILED"

	// Plan / orchestration errors
	ErrCriticalOperation ErrorCode = "CRITICAL_OPERATION"
	ErrPlanInvalid       ErrorCode = "PLAN_INVALID"

	// Preflight errors
	ErrGameRunning ErrorCode = "GAME_RUNNING"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// MigrateError represents a structured error with code and details
type MigrateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MigrateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MigrateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MigrateError) Is(target error) bool {
	var targetErr *MigrateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MigrateError with the given code and message
func New(code ErrorCode, message string) *MigrateError {
	return &MigrateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MigrateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MigrateError {
	return &MigrateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MigrateError
func Wrap(err error, code ErrorCode, message string) *MigrateError {
	if err == nil {
		return nil
	}
	return &MigrateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MigrateError {
	if err == nil {
		return nil
	}
	return &MigrateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MigrateError) WithDetail(key string, value interface{}) *MigrateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var migrateErr *MigrateError
	if errors.As(err, &migrateErr) {
		return migrateErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MigrateError
func GetErrorCode(err error) ErrorCode {
	var migrateErr *MigrateError
	if errors.As(err, &migrateErr) {
		return migrateErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MigrateError
func GetErrorDetails(err error) map[string]interface{} {
	var migrateErr *MigrateError
	if errors.As(err, &migrateErr) {
		return migrateErr.Details
	}
	return nil
}
