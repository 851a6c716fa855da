// Package errors provides structured error types for gridcal.
//
// Every failure the layout engine, the week resolver and the calendar
// assembler report carries a machine-readable [Code], so the CLI and the
// HTTP server can react to the category of error without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - DEGENERATE_GEOMETRY, LABEL_COUNT_MISMATCH: layout configuration errors
//   - RENDER_FAILED: a sink could not produce its output
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWeek, "week %d out of range", week)
//	if errors.Is(err, errors.ErrCodeInvalidWeek) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "convert %s", format)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidWeek   Code = "INVALID_WEEK"
	ErrCodeInvalidYear   Code = "INVALID_YEAR"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeInvalidKind   Code = "INVALID_KIND"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Layout errors
	ErrCodeDegenerateGeometry Code = "DEGENERATE_GEOMETRY"
	ErrCodeLabelCountMismatch Code = "LABEL_COUNT_MISMATCH"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// Only the outermost *Error is considered.
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
