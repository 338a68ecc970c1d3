package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/config"
	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/fsutil"
	"github.com/buildben/cli/internal/output"
)

const configHeader = "# buildben CLI configuration\n# Validate with: buildben config vet\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create the buildben configuration file with default values.

The file is created at ~/.buildben/config.yaml unless --config or
BUILDBEN_CONFIG names another location.

Examples:
  # Initialize configuration
  buildben config init

  # Overwrite existing configuration
  buildben config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runConfigInit(gc, force))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	exists, err := config.Exists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + output.FormatNoun(path)))
	output.Println("Validate with: buildben config vet")
	return nil
}
