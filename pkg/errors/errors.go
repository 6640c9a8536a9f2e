// Package errors provides structured error types for archdiagram.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Reporting the offending node or cluster identifier
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Declaration errors are raised by the diagram builder at the point of the
// offending call:
//   - DUPLICATE_ID: a node or cluster identifier was declared twice
//   - UNKNOWN_NODE: a cluster member or edge endpoint was never declared
//   - SEALED: a declaration was attempted after the diagram was built
//
// Rendering errors are raised by the renderer:
//   - RENDER_FAILED: the output path is unwritable, the format is
//     unsupported, or Graphviz failed to initialise or lay out the graph
//
// # Usage
//
//	err := errors.UnknownNode("B")
//	if errors.Is(err, errors.ErrCodeUnknownNode) {
//	    fmt.Println("missing node:", errors.GetID(err))
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRender, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Declaration errors
	ErrCodeDuplicateID Code = "DUPLICATE_ID"
	ErrCodeUnknownNode Code = "UNKNOWN_NODE"
	ErrCodeSealed      Code = "SEALED"

	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Rendering errors
	ErrCodeRender Code = "RENDER_FAILED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	ID      string // Offending node or cluster identifier (optional)
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

// DuplicateID reports that kind ("node" or "cluster") id was already declared.
func DuplicateID(kind, id string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateID,
		Message: fmt.Sprintf("%s %q already declared", kind, id),
		ID:      id,
	}
}

// UnknownNode reports a reference to a node that was never declared.
func UnknownNode(id string) *Error {
	return &Error{
		Code:    ErrCodeUnknownNode,
		Message: fmt.Sprintf("node %q is not declared", id),
		ID:      id,
	}
}

// Render wraps a rendering failure.
func Render(cause error, format string, args ...any) *Error {
	return Wrap(ErrCodeRender, cause, format, args...)
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

// GetID extracts the offending identifier from an error, if available.
func GetID(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.ID
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
