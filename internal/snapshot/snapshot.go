// Package snapshot freezes a project at its current commit into a
// directory holding a lock file, an env file and a Dockerfile, and can
// build the image from them.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/buildben/cli/internal/docker"
	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/exec"
	"github.com/buildben/cli/internal/freeze"
	"github.com/buildben/cli/internal/fsutil"
	"github.com/buildben/cli/internal/git"
	"github.com/buildben/cli/internal/output"
	"github.com/buildben/cli/internal/templates"
)

// File names written into the snapshot directory.
const (
	EnvFileName      = "experiment.env"
	DockerignoreName = "Dockerfile.dockerignore"
	DockerfileName   = "Dockerfile"
	ManifestName     = "pyproject.toml"
)

// Options configures a snapshot.
type Options struct {
	// Root is the absolute project root.
	Root string

	// TargetDir is the snapshot directory, relative to Root.
	TargetDir string

	// ProjectName is the Python package; lowercased it names the image repository.
	ProjectName string

	// PythonBase is the base image of the generated Dockerfile.
	PythonBase string

	// Build also probes the daemon, builds the image and reports its size.
	Build bool
}

// Result describes a finished snapshot.
type Result struct {
	Target       string
	TargetRel    string
	CommitHash   string
	CommitDate   string
	ImageTag     string
	LockFile     string
	EnvFile      string
	Dockerignore string
	Dockerfile   string

	// ImageSize is set when the image was built.
	ImageSize string
}

// Built reports whether the image was built.
func (r *Result) Built() bool {
	return r.ImageSize != ""
}

// Files returns the written files in creation order.
func (r *Result) Files() []string {
	return []string{r.LockFile, r.EnvFile, r.Dockerignore, r.Dockerfile}
}

// Hints returns follow-up commands for the operator.
func (r *Result) Hints() []string {
	if !r.Built() {
		return []string{
			fmt.Sprintf("Build with:  docker build --tag %s --file %s .", r.ImageTag, filepath.ToSlash(filepath.Join(r.TargetRel, DockerfileName))),
		}
	}
	return []string{
		fmt.Sprintf("Check with:  docker run --rm -it %s", r.ImageTag),
		fmt.Sprintf("Push with:   docker push %s", r.ImageTag),
		fmt.Sprintf("Remove with: docker image rm %s", r.ImageTag),
	}
}

// Snapshotter runs the snapshot steps against external tools.
type Snapshotter struct {
	runner exec.CommandRunner
	docker *docker.Client
}

// New returns a Snapshotter. A nil docker client uses the defaults.
func New(r exec.CommandRunner, d *docker.Client) *Snapshotter {
	if d == nil {
		d = docker.New(r, "", 0)
	}
	return &Snapshotter{runner: r, docker: d}
}

// ImageTag returns the image reference for a project at commit hash.
// Docker repository names must be lowercase; the tag keeps the hash.
func ImageTag(projectName, hash string) string {
	return strings.ToLower(projectName) + ":" + hash
}

// TargetRel validates target against root and returns the cleaned
// relative path. Targets outside root and the root itself are rejected.
func TargetRel(root, target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", oerrors.NewValidationError("target directory is required", "", "pass --target-dir experiments/<dir>")
	}
	abs := target
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, target)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("target directory %q must be inside the project root", target),
			root,
			"use a path relative to the project root, e.g. experiments/<dir>",
		)
	}
	return rel, nil
}

// Run performs the snapshot. Steps run in order and the first failure
// stops the run; files written before it stay on disk.
func (s *Snapshotter) Run(ctx context.Context, opts Options) (*Result, error) {
	rel, err := TargetRel(opts.Root, opts.TargetDir)
	if err != nil {
		return nil, err
	}
	target := filepath.Join(opts.Root, rel)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", target, err)
	}

	res := &Result{
		Target:       target,
		TargetRel:    rel,
		LockFile:     filepath.Join(target, freeze.LockFileName),
		EnvFile:      filepath.Join(target, EnvFileName),
		Dockerignore: filepath.Join(target, DockerignoreName),
		Dockerfile:   filepath.Join(target, DockerfileName),
	}

	repo := git.New(s.runner, opts.Root)
	if res.CommitHash, err = repo.ShortHead(ctx); err != nil {
		return nil, err
	}
	if res.CommitDate, err = repo.CommitDate(ctx, res.CommitHash); err != nil {
		return nil, err
	}
	res.ImageTag = ImageTag(opts.ProjectName, res.CommitHash)
	output.Info("using commit", "hash", res.CommitHash, "date", res.CommitDate)

	compiler := freeze.NewCompiler(s.runner, opts.Root)
	err = output.RunWithSpinner(ctx, "pip-compiling environment...", func(ctx context.Context) error {
		return compiler.Compile(ctx, ManifestName, res.LockFile)
	})
	if err != nil {
		return nil, err
	}
	output.Info("environment frozen", "lock", filepath.ToSlash(filepath.Join(rel, freeze.LockFileName)))

	if err := s.writeFiles(res, opts); err != nil {
		return nil, err
	}

	if !opts.Build {
		return res, nil
	}

	if err := s.docker.Probe(ctx); err != nil {
		return nil, err
	}
	build := docker.BuildOptions{Tag: res.ImageTag, Dockerfile: res.Dockerfile, Context: opts.Root}
	err = output.RunWithSpinner(ctx, "building image "+res.ImageTag+"...", func(ctx context.Context) error {
		return s.docker.Build(ctx, build)
	})
	if err != nil {
		return nil, err
	}
	if res.ImageSize, err = s.docker.ImageSize(ctx, res.ImageTag); err != nil {
		return nil, err
	}
	output.Info("image built", "tag", res.ImageTag, "size", res.ImageSize)

	return res, nil
}

func (s *Snapshotter) writeFiles(res *Result, opts Options) error {
	env := fmt.Sprintf("COMMIT_HASH=%s\nLOCK_FILE=%s\n", res.CommitHash, freeze.LockFileName)
	if err := fsutil.WriteFileAtomic(res.EnvFile, []byte(env), 0o644); err != nil {
		return err
	}

	data := templates.SnapshotData{
		ProjectName: opts.ProjectName,
		ImageTag:    res.ImageTag,
		CommitHash:  res.CommitHash,
		CommitDate:  res.CommitDate,
		PythonBase:  opts.PythonBase,
		LockFile:    filepath.ToSlash(filepath.Join(res.TargetRel, freeze.LockFileName)),
		TargetRel:   filepath.ToSlash(res.TargetRel),
	}

	for _, f := range []struct{ tmpl, path string }{
		{templates.Dockerignore, res.Dockerignore},
		{templates.Dockerfile, res.Dockerfile},
	} {
		content, err := templates.Render(f.tmpl, data)
		if err != nil {
			return err
		}
		if err := fsutil.WriteFileAtomic(f.path, content, 0o644); err != nil {
			return err
		}
		output.Debug("wrote snapshot file", "path", f.path)
	}
	return nil
}
