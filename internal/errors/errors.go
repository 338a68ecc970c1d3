// Package errors provides sentinel errors, structured error details and
// exit codes for the buildben CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Exit codes returned by the buildben binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input.
	ExitValidationError = 2

	// ExitNotFound indicates a template, module or project root was not found.
	ExitNotFound = 5

	// ExitAborted indicates the operator declined an overwrite confirmation.
	ExitAborted = 7
)

// DetailError captures structured error information for human-readable output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with the process exit code it should produce.
type ExitError struct {
	// Code is the exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CommandError describes an external process that exited non-zero.
type CommandError struct {
	// Command is the command line that was run.
	Command string

	// ExitCode is the exit code reported by the process.
	ExitCode int

	// Stderr is the captured standard error output.
	Stderr string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap returns ErrExternal so callers can match with errors.Is.
func (e *CommandError) Unwrap() error {
	return ErrExternal
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// A failed subprocess hands its own exit code to the caller.
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ExitCode > 0 {
			return cmdErr.ExitCode
		}
		return ExitGeneralError
	}

	switch {
	case errors.Is(err, ErrAborted):
		return ExitAborted
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
