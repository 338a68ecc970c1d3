package docker

import (
	"fmt"

	oerrors "github.com/buildben/cli/internal/errors"
)

// NotInstalledError reports that the docker binary is not on PATH.
type NotInstalledError struct {
	Binary string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("%s is not installed or not on PATH", e.Binary)
}

// Unwrap returns ErrExternal.
func (e *NotInstalledError) Unwrap() error { return oerrors.ErrExternal }

// DaemonNotRunningError reports that the binary exists but the daemon
// did not answer.
type DaemonNotRunningError struct {
	Binary string
	Reason string
}

func (e *DaemonNotRunningError) Error() string {
	msg := fmt.Sprintf("the %s daemon is not running", e.Binary)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns ErrExternal.
func (e *DaemonNotRunningError) Unwrap() error { return oerrors.ErrExternal }
