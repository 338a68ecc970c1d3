// Package main is the entry point for the buildben CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/buildben/cli/internal/cmd"
	oerrors "github.com/buildben/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Usage and flag errors from cobra
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
