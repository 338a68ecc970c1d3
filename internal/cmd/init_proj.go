package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/cmdutil"
	"github.com/buildben/cli/internal/git"
	"github.com/buildben/cli/internal/layout"
	"github.com/buildben/cli/internal/output"
	"github.com/buildben/cli/internal/scaffold"
	"github.com/buildben/cli/internal/templates"
)

// projectFileDescriptions annotate the init-proj file tree.
var projectFileDescriptions = map[string]string{
	".gitignore":       "Git ignore rules",
	"pyproject.toml":   "Project metadata and tool config",
	".envrc":           "direnv hook, loads .env",
	".env.template":    "Template for .env",
	"justfile":         "Task recipes",
	"README.IGNORE.md": "Rename to README.md to track",
}

// NewInitProjCmd creates the init-proj command.
func NewInitProjCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.ScaffoldFlags

	cmd := &cobra.Command{
		Use:     "init-proj <name>",
		Aliases: []string{"proj"},
		Short:   "Scaffold a new src-layout Python project",
		Long: `Scaffold a new src-layout Python project in <target-dir>/<name>.

The name must be a valid Python identifier; it becomes the package under
src/. An existing directory is only written into after confirmation.

Examples:
  # Create ./my_tool
  buildben init-proj my_tool

  # Create ~/code/my_tool with a first commit on main
  buildben init-proj my_tool -t ~/code -g -u octocat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runInitProj(cmd, gc, &flags, args[0]))
		},
	}

	flags.AddTo(cmd)
	return cmd
}

func runInitProj(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, flags *cmdutil.ScaffoldFlags, name string) error {
	if err := layout.ValidateProjectName(name); err != nil {
		return err
	}

	root, err := scaffold.ProjectDir(flags.TargetDir, name)
	if err != nil {
		return err
	}

	resolved := gc.ResolvedConfig()
	fsys, err := templates.Root(resolved.TemplatesDir.Value)
	if err != nil {
		return err
	}

	plan := layout.Project(root, name, resolved.GitHubUser.Value)
	res, err := scaffold.New(fsys, cmdutil.Confirmer(gc, cmd.ErrOrStderr())).Run(plan)
	if err != nil {
		return err
	}

	if flags.GitInit {
		if err := initialCommit(cmd.Context(), gc, root); err != nil {
			return err
		}
	}

	cmdutil.PrintScaffoldResult(fmt.Sprintf("%s scaffold complete", output.FormatNoun(name)), name, res, projectFileDescriptions)
	cmdutil.PrintNextSteps(
		fmt.Sprintf("cd %q", root),
		"direnv allow       # Trust .envrc",
		"just               # List available recipes",
	)
	return nil
}

func initialCommit(ctx context.Context, gc *cmdtypes.GlobalConfig, root string) error {
	if err := git.New(gc.Runner, root).InitialCommit(ctx); err != nil {
		output.Error("git initialisation failed, project files were kept", "dir", root)
		return err
	}
	output.Info("initialised git repository", "branch", git.DefaultBranch)
	return nil
}
