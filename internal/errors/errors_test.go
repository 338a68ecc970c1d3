//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrAborted, ErrExternal)
	assert.NotEqual(t, ErrNotImplemented, ErrValidation)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "project name must be a valid Python identifier",
		Location: "/tmp/my-proj",
		Context:  map[string]string{"Name": "my-proj", "Allowed": "[A-Za-z_][A-Za-z0-9_]*"},
		Hint:     "Use underscores instead of dashes",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: /tmp/my-proj")
	assert.Contains(t, out, "Name: my-proj")
	assert.Contains(t, out, "project name must be a valid Python identifier")
	assert.Contains(t, out, "Hint: Use underscores instead of dashes")
	// Context keys render in sorted order.
	assert.Less(t, strings.Index(out, "Allowed:"), strings.Index(out, "Name:"))
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrValidation}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("template missing", "_REPORT.md", "Reinstall buildben")

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "not found", detail.Type)
	assert.Equal(t, "_REPORT.md", detail.Location)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Command: "git commit -m init", ExitCode: 128, Stderr: "fatal: no identity\n"}

	assert.Equal(t, "git commit -m init exited with code 128: fatal: no identity", err.Error())
	assert.True(t, errors.Is(err, ErrExternal))

	quiet := &CommandError{Command: "pip-compile", ExitCode: 2}
	assert.Equal(t, "pip-compile exited with code 2", quiet.Error())
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "project root")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "project root")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"not found error", ErrNotFound, ExitNotFound},
		{"aborted error", ErrAborted, ExitAborted},
		{"external error keeps process code", &CommandError{Command: "docker build", ExitCode: 3}, 3},
		{"wrapped external error", fmt.Errorf("snapshot: %w", &CommandError{Command: "git init", ExitCode: 128}), 128},
		{"external error without code", &CommandError{Command: "git init", ExitCode: -1}, ExitGeneralError},
		{"external sentinel is general", ErrExternal, ExitGeneralError},
		{"wrapped not found", fmt.Errorf("copying: %w", ErrNotFound), ExitNotFound},
		{"explicit exit error wins", &ExitError{Code: 42, Err: ErrValidation}, 42},
		{"unknown error returns general error", errors.New("boom"), ExitGeneralError},
		{"not implemented is general", ErrNotImplemented, ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "exit code 3", (&ExitError{Code: 3}).Error())
	assert.Equal(t, "boom", (&ExitError{Code: 1, Err: errors.New("boom")}).Error())
}
