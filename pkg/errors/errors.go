// Package errors provides structured error types for andebox.
//
// Every failure that reaches the command layer carries a machine-readable
// [Code] so that the CLI can decide on an exit status and tests can assert on
// the failure category without matching message text.
//
// # Error Codes
//
//   - MALFORMED_ENTRY: an ignore-file line does not match the entry grammar
//   - FILE_NOT_FOUND: an explicitly requested file does not exist
//   - INVALID_PATTERN: a filter regular expression does not compile
//   - INVALID_*: other input and metadata validation failures
//   - COMMAND_FAILED: an external tool exited with a non-zero status
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedEntry, "cannot parse line: %q", line)
//	if errors.Is(err, errors.ErrCodeMalformedEntry) {
//	    // Handle parse failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "ignore file %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPattern  Code = "INVALID_PATTERN"
	ErrCodeInvalidVersion  Code = "INVALID_VERSION"
	ErrCodeInvalidMetadata Code = "INVALID_METADATA"
	ErrCodeMalformedEntry  Code = "MALFORMED_ENTRY"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// External process errors
	ErrCodeCommandFailed Code = "COMMAND_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// CommandError reports an external tool that exited unsuccessfully.
type CommandError struct {
	Name     string // Executable name
	ExitCode int    // Process exit status
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("error running %s (rc=%d)", e.Name, e.ExitCode)
}

// Code returns the error code for this error type.
func (e *CommandError) Code() Code {
	return ErrCodeCommandFailed
}

// ExitCode returns the process exit status the CLI should terminate with.
// External tool failures propagate the tool's own status; every other error
// maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *CommandError
	if errors.As(err, &ce) && ce.ExitCode > 0 {
		return ce.ExitCode
	}
	return 1
}
