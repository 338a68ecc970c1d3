package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildben/cli/internal/docker"
	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/exec"
	"github.com/buildben/cli/internal/testutil"
)

func snapshotHarness(t *testing.T) (*cliHarness, string) {
	t.Helper()
	h := newHarness(t)
	root := testutil.ProjectDir(t, "demo")
	h.gc.Env = map[string]string{"PROJECT_ROOT": root}
	h.stub.
		On("git", []string{"rev-parse", "--short", "HEAD"}, exec.CmdResult{Stdout: "a1b2c3d\n"}).
		On("git", []string{"show", "-s", "--format=%cd", "--date=iso", "a1b2c3d"}, exec.CmdResult{Stdout: "2026-10-14 09:00:00 +0000\n"})
	return h, root
}

func TestEnvSnapshot_WritesFiles(t *testing.T) {
	h, root := snapshotHarness(t)

	require.NoError(t, h.run("env-snapshot", "-t", "experiments/2026-10-14_trial", "-b", "python:3.11-slim"))

	target := filepath.Join(root, "experiments", "2026-10-14_trial")
	assert.Equal(t, "COMMIT_HASH=a1b2c3d\nLOCK_FILE=requirements.lock\n",
		testutil.ReadFile(t, filepath.Join(target, "experiment.env")))
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(target, "Dockerfile")), "FROM python:3.11-slim AS builder")
	assert.FileExists(t, filepath.Join(target, "Dockerfile.dockerignore"))

	out := h.stdout.String()
	assert.Contains(t, out, "experiments/2026-10-14_trial/experiment.env")
	assert.Contains(t, out, "docker build --tag demo:a1b2c3d")
	assert.NotContains(t, h.stub.CommandLines(), "docker info")
}

func TestEnvSnapshot_PythonBaseFromEnv(t *testing.T) {
	h, root := snapshotHarness(t)
	t.Setenv("BUILDBEN_PYTHON_BASE", "python:3.13-slim")

	require.NoError(t, h.run("snap", "-t", "experiments/x"))
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(root, "experiments", "x", "Dockerfile")), "FROM python:3.13-slim")
}

func TestEnvSnapshot_TargetRequired(t *testing.T) {
	h, _ := snapshotHarness(t)
	err := h.run("env-snapshot")
	assert.ErrorContains(t, err, "target-dir")
}

func TestEnvSnapshot_TargetOutsideRoot(t *testing.T) {
	h, _ := snapshotHarness(t)
	err := h.run("env-snapshot", "-t", "../elsewhere")
	assert.Equal(t, oerrors.ExitValidationError, exitCode(err))
	assert.Empty(t, h.stub.Calls)
}

func TestEnvSnapshot_DockerBuild(t *testing.T) {
	h, root := snapshotHarness(t)
	h.stub.On("docker", []string{"image", "inspect", "--format", "{{.Size}}", "demo:a1b2c3d"}, exec.CmdResult{Stdout: "152000000\n"})

	require.NoError(t, h.run("env-snapshot", "-t", "experiments/x", "--docker"))

	lines := h.stub.CommandLines()
	assert.Contains(t, lines, "docker info")
	assert.Contains(t, lines, "docker build --tag demo:a1b2c3d --file "+filepath.Join(root, "experiments", "x", "Dockerfile")+" "+root)
	out := h.stdout.String()
	assert.Contains(t, out, "152 MB")
	assert.Contains(t, out, "docker push demo:a1b2c3d")
}

func TestEnvSnapshot_DockerNotInstalled(t *testing.T) {
	h, root := snapshotHarness(t)
	h.stub.Missing("docker")

	err := h.run("env-snapshot", "-t", "experiments/x", "--docker")

	assert.Equal(t, oerrors.ExitGeneralError, exitCode(err))
	assert.Contains(t, err.Error(), "Install Docker")
	assert.FileExists(t, filepath.Join(root, "experiments", "x", "Dockerfile"))
}

func TestEnvSnapshot_BuildFailureKeepsDockerExitCode(t *testing.T) {
	h, root := snapshotHarness(t)
	build := docker.BuildOptions{
		Tag:        "demo:a1b2c3d",
		Dockerfile: filepath.Join(root, "experiments", "x", "Dockerfile"),
		Context:    root,
	}
	h.stub.On("docker", build.Args(), exec.CmdResult{ExitCode: 17, Stderr: "failed to solve"})

	err := h.run("env-snapshot", "-t", "experiments/x", "--docker")

	assert.Equal(t, 17, exitCode(err))
	assert.Contains(t, err.Error(), "failed to solve")
}

func TestEnvSnapshot_BadProbeTimeout(t *testing.T) {
	h, _ := snapshotHarness(t)
	t.Setenv("BUILDBEN_DOCKER_PROBE_TIMEOUT", "soon")

	err := h.run("env-snapshot", "-t", "experiments/x")
	assert.Equal(t, oerrors.ExitValidationError, exitCode(err))
}
