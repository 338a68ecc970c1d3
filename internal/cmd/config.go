package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the buildben CLI.`,
	}

	cmd.AddCommand(NewConfigInitCmd(gc))
	cmd.AddCommand(NewConfigVetCmd(gc))

	return cmd
}
