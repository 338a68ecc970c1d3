// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/cmdutil"
	"github.com/buildben/cli/internal/config"
	"github.com/buildben/cli/internal/output"
)

// NewRootCmd creates the root command for the buildben CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(cmdtypes.NewGlobalConfig())
}

// NewRootCmdWith creates the root command around gc. Tests use it to
// inject a stub runner, a fixed clock and a scripted stdin.
func NewRootCmdWith(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		configFlag     string
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "buildben",
		Short: "Scaffold Python projects, experiments and environment snapshots",
		Long: `buildben creates src-layout Python projects, dated experiment folders
inside them, and reproducible environment snapshots (lock file, env file
and Dockerfile) of a project at its current commit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, gc, configFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: BUILDBEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&gc.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().BoolVarP(&gc.Yes, "yes", "y", false, "Answer yes to overwrite prompts")

	rootCmd.AddCommand(
		NewInitProjCmd(gc),
		NewAddExperimCmd(gc),
		NewEnvSnapshotCmd(gc),
		NewInitDataCmd(gc),
		NewInitDatabaseCmd(gc),
		NewConfigCmd(gc),
		NewVersionCmd(gc),
	)

	return rootCmd
}

// initializeGlobals loads the config file, resolves every value and sets
// up logging.
func initializeGlobals(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, configFlag string, timestampsFlag bool) error {
	pathValue, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}
	gc.ConfigPath = pathValue.Value

	// A broken config file must not block commands that do not need it;
	// `config vet` reports the problem.
	cfg, loadErr := config.NewLoader().Load(gc.ConfigPath)
	if loadErr != nil {
		cfg = &config.Config{}
	}
	gc.Config = cfg

	gc.Resolved = config.ResolveAll(config.ResolveAllOptions{
		GitHubUserFlag: cmdutil.StringFlag(cmd, cmdutil.FlagGitHubUser),
		PythonBaseFlag: cmdutil.StringFlag(cmd, cmdutil.FlagPythonBase),
		Config:         cfg,
	})

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: gc.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file, run `buildben config vet`", "path", gc.ConfigPath, "error", loadErr)
	}

	if gc.Verbose {
		output.Debug("initializing CLI", "config", gc.ConfigPath, "source", pathValue.Source)
		config.LogResolvedValues(gc.Resolved.Values())
	}

	return nil
}
