package cmd

import (
	oerrors "github.com/buildben/cli/internal/errors"
)

// withExitCode wraps err in an ExitError carrying the code main exits with.
func withExitCode(err error) error {
	if err == nil {
		return nil
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
