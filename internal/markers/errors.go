package markers

import (
	"fmt"

	oerrors "github.com/buildben/cli/internal/errors"
)

// ModuleNotFoundError is returned when a module listed for flattening has
// neither a <name>.py file nor a <name>/__init__.py package.
type ModuleNotFoundError struct {
	Module string
	Dir    string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %q not found in %s", e.Module, e.Dir)
}

func (e *ModuleNotFoundError) Unwrap() error { return oerrors.ErrNotFound }

// NameCollisionError is returned when two flattened modules export the same
// function name.
type NameCollisionError struct {
	Name   string
	First  string
	Second string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("function %q is exported by both %q and %q", e.Name, e.First, e.Second)
}

func (e *NameCollisionError) Unwrap() error { return oerrors.ErrValidation }
