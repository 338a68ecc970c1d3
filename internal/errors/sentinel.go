package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input: a bad name, undecodable text, conflicting exports.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, module, project root, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrAborted indicates the operator declined a confirmation prompt.
	ErrAborted = errors.New("aborted by user")

	// ErrExternal indicates an external command (git, docker, pip-compile) failed.
	ErrExternal = errors.New("external command failed")

	// ErrNotImplemented indicates a command that exists but has no implementation yet.
	ErrNotImplemented = errors.New("not implemented")
)
