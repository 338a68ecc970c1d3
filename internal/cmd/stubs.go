package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/cmdutil"
	oerrors "github.com/buildben/cli/internal/errors"
)

// NewInitDataCmd creates the init-data stub.
func NewInitDataCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return newScaffoldStubCmd(gc, "init-data", "data",
		"Scaffold a data repository with a project-like layout (not implemented)")
}

// NewInitDatabaseCmd creates the init-database stub.
func NewInitDatabaseCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return newScaffoldStubCmd(gc, "init-database", "db",
		"Scaffold a database repository (not implemented)")
}

func newScaffoldStubCmd(_ *cmdtypes.GlobalConfig, use, alias, short string) *cobra.Command {
	var flags cmdutil.ScaffoldFlags

	cmd := &cobra.Command{
		Use:     use + " <name>",
		Aliases: []string{alias},
		Short:   short,
		Long:    short + ".\n\nUse init-proj instead.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(&oerrors.DetailError{
				Type:    "not implemented",
				Message: fmt.Sprintf("%s is not implemented yet", use),
				Hint:    "Use 'buildben init-proj' instead.",
				Cause:   oerrors.ErrNotImplemented,
			})
		},
	}

	flags.AddTo(cmd)
	return cmd
}
