package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/cmdutil"
	"github.com/buildben/cli/internal/config"
	"github.com/buildben/cli/internal/docker"
	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/output"
	"github.com/buildben/cli/internal/scaffold"
	"github.com/buildben/cli/internal/snapshot"
)

// NewEnvSnapshotCmd creates the env-snapshot command.
func NewEnvSnapshotCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.SnapshotFlags

	cmd := &cobra.Command{
		Use:     "env-snapshot",
		Aliases: []string{"snap"},
		Short:   "Snapshot the project into requirements.lock, experiment.env and a Dockerfile",
		Long: `Freeze the project at its current commit.

Writes into <target-dir>, relative to the project root:
  requirements.lock         pip-compile lock with hashes, dev extra included
  experiment.env            COMMIT_HASH and LOCK_FILE
  Dockerfile.dockerignore   keeps only <target-dir> of experiments/
  Dockerfile                two-stage image checking out the commit

With --docker the image <project>:<commit> is built and its size reported.

Examples:
  buildben env-snapshot -t experiments/2024-05-01_baseline
  buildben env-snapshot -t experiments/2024-05-01_baseline -b python:3.11-slim --docker`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runEnvSnapshot(cmd, gc, &flags))
		},
	}

	flags.AddTo(cmd)
	return cmd
}

func runEnvSnapshot(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, flags *cmdutil.SnapshotFlags) error {
	root, err := scaffold.LocateEnclosingRoot("", scaffold.DefaultSentinels, config.RootOverride(gc.Env))
	if err != nil {
		return err
	}
	env, err := config.LoadEnvironment(root, config.DefaultDotenvFiles, gc.Env)
	if err != nil {
		return err
	}

	resolved := gc.ResolvedConfig()
	timeout, err := config.ParseProbeTimeout(resolved.ProbeTimeout.Value)
	if err != nil {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: err.Error(),
			Context: map[string]string{"docker.probeTimeout": resolved.ProbeTimeout.Value},
			Hint:    "Use a Go duration such as 5s or 1m.",
			Cause:   oerrors.ErrValidation,
		}
	}

	client := docker.New(gc.Runner, resolved.DockerBinary.Value, timeout)
	res, err := snapshot.New(gc.Runner, client).Run(cmd.Context(), snapshot.Options{
		Root:        root,
		TargetDir:   flags.TargetDir,
		ProjectName: env.ProjectName,
		PythonBase:  resolved.PythonBase.Value,
		Build:       flags.Docker,
	})
	if err != nil {
		return snapshotError(err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("snapshot of %s written to %s",
		output.FormatNoun(res.CommitHash), output.FormatNoun(filepath.ToSlash(res.TargetRel)))))
	for _, f := range res.Files() {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		output.Println("  " + filepath.ToSlash(rel))
	}
	if res.Built() {
		output.Println(output.FormatCheckmark(fmt.Sprintf("built %s (%s)", output.FormatNoun(res.ImageTag), res.ImageSize)))
	}
	cmdutil.PrintNextSteps(res.Hints()...)
	return nil
}

// snapshotError attaches install hints to docker failures.
func snapshotError(err error) error {
	var notInstalled *docker.NotInstalledError
	var notRunning *docker.DaemonNotRunningError
	switch {
	case errors.As(err, &notInstalled):
		return &oerrors.DetailError{
			Type:    "external command failed",
			Message: err.Error(),
			Hint:    "Install Docker, or drop --docker to only write the snapshot files.",
			Cause:   err,
		}
	case errors.As(err, &notRunning):
		return &oerrors.DetailError{
			Type:    "external command failed",
			Message: err.Error(),
			Hint:    "Start the Docker daemon and re-run; the snapshot files are already written.",
			Cause:   err,
		}
	default:
		return err
	}
}
