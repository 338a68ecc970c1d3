package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/output"
	"github.com/buildben/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show buildben version information.

Displays:
  - buildben version, commit, and build date
  - CUE SDK version used by config vet
  - versions of git, pip-compile and docker found on PATH`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Println(version.Get().String())
			output.Println("")
			output.Println("Tools:")
			for _, t := range version.DetectTools(cmd.Context(), gc.Runner) {
				output.Println(t.String())
			}
			return nil
		},
	}
}
