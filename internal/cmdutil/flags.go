// Package cmdutil provides shared command utilities: flag groups, the
// overwrite confirmer and scaffold result printing.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// Flag names read back by the root pre-run for config resolution.
const (
	FlagGitHubUser = "github-user"
	FlagPythonBase = "py-base"
)

// ScaffoldFlags holds the flags init-proj reads. The init-data and
// init-database stubs register them to keep the same surface, but ignore them.
type ScaffoldFlags struct {
	TargetDir  string
	GitInit    bool
	GitHubUser string
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.TargetDir, "target-dir", "t", ".",
		"Directory in which to create the project")
	cmd.Flags().BoolVarP(&f.GitInit, "git-init", "g", false,
		"Initialise a git repository with an initial commit")
	cmd.Flags().StringVarP(&f.GitHubUser, FlagGitHubUser, "u", "",
		"GitHub username (default: from config, else github-user)")
}

// SnapshotFlags holds the env-snapshot flags.
type SnapshotFlags struct {
	TargetDir  string
	PythonBase string
	Docker     bool
}

// AddTo registers the snapshot flags on the given cobra command.
func (f *SnapshotFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.TargetDir, "target-dir", "t", "",
		"Directory, relative to the project root, for the lock, env and Docker files")
	cmd.Flags().StringVarP(&f.PythonBase, FlagPythonBase, "b", "",
		"Base image (default: from config, else python:3.12-slim)")
	cmd.Flags().BoolVar(&f.Docker, "docker", false,
		"Also build the Docker image and report its size")
	_ = cmd.MarkFlagRequired("target-dir")
}

// StringFlag returns the value of flag name on cmd if the command defines
// it, else "".
func StringFlag(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}
