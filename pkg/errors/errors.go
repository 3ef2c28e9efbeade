// Package errors provides structured error types for miniworld.
//
// Errors carry a machine-readable [Code] next to a human-readable message,
// so the CLI can print a friendly line while tests and callers branch on
// the code:
//
//	page, err := store.Get(i)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // index outside [0, store.Len())
//	}
//
// # Error Codes
//
//   - INVALID_*: catalog, config or flag validation failures
//   - OUT_OF_RANGE: page lookups outside the book
//   - NOT_FOUND: missing files (catalogs, config)
//   - INTERNAL_ERROR: rendering or encoding failures
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidContent Code = "INVALID_CONTENT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidColor   Code = "INVALID_COLOR"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeOutOfRange   Code = "OUT_OF_RANGE"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
// Only the outermost *Error in the chain is consulted.
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

// RangeError reports an index outside a bounded sequence. It is wrapped in
// an *Error with [ErrCodeOutOfRange] by [OutOfRange].
type RangeError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("index %d: sequence is empty", e.Index)
	}
	return fmt.Sprintf("index %d not in [0, %d)", e.Index, e.Length)
}

// OutOfRange returns an [ErrCodeOutOfRange] error for index in a sequence of
// the given length. The *RangeError is reachable with errors.As.
func OutOfRange(what string, index, length int) *Error {
	return Wrap(ErrCodeOutOfRange, &RangeError{Index: index, Length: length}, "%s %d does not exist", what, index+1)
}
