package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/config"
	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the buildben configuration file against its schema.

The config path is resolved using precedence:
  --config flag > BUILDBEN_CONFIG env > ~/.buildben/config.yaml

Examples:
  buildben config vet
  buildben config vet --config ./buildben.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runConfigVet(gc))
		},
	}
}

func runConfigVet(gc *cmdtypes.GlobalConfig) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return err
	}
	output.Debug("validating config", "path", path)

	exists, err := config.Exists(path)
	if err != nil {
		return err
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'buildben config init' to create default configuration.",
			Cause:    oerrors.ErrNotFound,
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(path); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + path))
	return nil
}
