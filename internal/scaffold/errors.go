package scaffold

import (
	"fmt"
	"strings"

	oerrors "github.com/buildben/cli/internal/errors"
)

// UserAbortError is returned when the operator declines to overwrite an
// existing directory.
type UserAbortError struct {
	Target string
}

func (e *UserAbortError) Error() string {
	return fmt.Sprintf("Aborted by user: %s already exists", e.Target)
}

func (e *UserAbortError) Unwrap() error { return oerrors.ErrAborted }

// TemplateNotFoundError is returned when a transfer map names a template
// that does not exist as a regular file under the template root.
type TemplateNotFoundError struct {
	Identifier string
	Cause      error
}

func (e *TemplateNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %q not found: %v", e.Identifier, e.Cause)
	}
	return fmt.Sprintf("template %q not found", e.Identifier)
}

func (e *TemplateNotFoundError) Unwrap() error { return oerrors.ErrNotFound }

// EncodingError is returned when a file listed for substitution is not
// valid UTF-8 text.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text", e.Path)
}

func (e *EncodingError) Unwrap() error { return oerrors.ErrValidation }

// RootNotFoundError is returned when no ancestor of the start directory
// contains a sentinel.
type RootNotFoundError struct {
	Start     string
	Sentinels []string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("not inside a project; looked for [%s] starting at %s",
		strings.Join(e.Sentinels, ", "), e.Start)
}

func (e *RootNotFoundError) Unwrap() error { return oerrors.ErrNotFound }
