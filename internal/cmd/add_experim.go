package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/cmdutil"
	"github.com/buildben/cli/internal/config"
	"github.com/buildben/cli/internal/layout"
	"github.com/buildben/cli/internal/output"
	"github.com/buildben/cli/internal/scaffold"
	"github.com/buildben/cli/internal/templates"
)

var experimentFileDescriptions = map[string]string{
	"REPORT.md":  "Goal, setup and results",
	"run.py":     "Runs the experiment",
	".paths.env": "Experiment paths",
}

// NewAddExperimCmd creates the add-experim command.
func NewAddExperimCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "add-experim [name]",
		Aliases: []string{"exp"},
		Short:   "Create a dated experiment inside ./experiments/",
		Long: `Create experiments/<YYYY-MM-DD>_<name> inside the enclosing project.

The project root is the nearest directory containing .git or
pyproject.toml, unless PROJECT_ROOT is set. PROJECT_NAME is read from the
environment, then .env and .env.secret, and defaults to the root's name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return withExitCode(runAddExperim(cmd, gc, name))
		},
	}
}

func runAddExperim(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, name string) error {
	if err := layout.ValidateExperimentName(name); err != nil {
		return err
	}

	root, err := scaffold.LocateEnclosingRoot("", scaffold.DefaultSentinels, config.RootOverride(gc.Env))
	if err != nil {
		return err
	}
	env, err := config.LoadEnvironment(root, config.DefaultDotenvFiles, gc.Env)
	if err != nil {
		return err
	}
	output.Debug("project environment", "root", env.Root, "project", env.ProjectName, "files", env.Files)

	fsys, err := templates.Root(gc.ResolvedConfig().TemplatesDir.Value)
	if err != nil {
		return err
	}

	date := gc.Now()
	plan := layout.Experiment(root, date, name, env.ProjectName)
	res, err := scaffold.New(fsys, cmdutil.Confirmer(gc, cmd.ErrOrStderr())).Run(plan)
	if err != nil {
		return err
	}

	dirName := layout.ExperimentDirName(date, name)
	cmdutil.PrintScaffoldResult(
		fmt.Sprintf("experiment %s created", output.FormatNoun(dirName)),
		filepath.ToSlash(filepath.Join(layout.ExperimentsDir, dirName)),
		res,
		experimentFileDescriptions,
	)
	cmdutil.PrintNextSteps(
		fmt.Sprintf("cd %q", res.Target),
		"python run.py",
		fmt.Sprintf("buildben env-snapshot -t %s", filepath.ToSlash(filepath.Join(layout.ExperimentsDir, dirName))),
	)
	return nil
}
