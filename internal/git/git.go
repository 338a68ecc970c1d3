// Package git runs the git operations buildben needs via exec.CommandRunner.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/buildben/cli/internal/exec"
	"github.com/buildben/cli/internal/output"
)

// Binary is the git executable name.
const Binary = "git"

// DefaultBranch is the branch name a freshly initialised project ends up on.
const DefaultBranch = "main"

// InitialCommitMessage is the message of the first project commit.
const InitialCommitMessage = "Initial commit"

// Repo runs git commands inside Dir.
type Repo struct {
	Dir    string
	Runner exec.CommandRunner
}

// New returns a Repo rooted at dir.
func New(r exec.CommandRunner, dir string) *Repo {
	return &Repo{Dir: dir, Runner: r}
}

func (g *Repo) run(ctx context.Context, args ...string) (string, error) {
	output.Debug("running git", "dir", g.Dir, "args", strings.Join(args, " "))
	res, err := exec.Check(ctx, g.Runner, Binary, args, exec.RunOpts{Dir: g.Dir})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Init runs `git init`.
func (g *Repo) Init(ctx context.Context) error {
	_, err := g.run(ctx, "init")
	return err
}

// AddAll stages the whole working tree.
func (g *Repo) AddAll(ctx context.Context) error {
	_, err := g.run(ctx, "add", ".")
	return err
}

// Commit records the staged changes with message.
func (g *Repo) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

// RenameBranch forces the current branch name to branch.
func (g *Repo) RenameBranch(ctx context.Context, branch string) error {
	_, err := g.run(ctx, "branch", "-M", branch)
	return err
}

// InitialCommit initialises a repository, commits everything and renames
// the branch to main. It stops at the first failing step.
func (g *Repo) InitialCommit(ctx context.Context) error {
	steps := []func(context.Context) error{
		g.Init,
		g.AddAll,
		func(ctx context.Context) error { return g.Commit(ctx, InitialCommitMessage) },
		func(ctx context.Context) error { return g.RenameBranch(ctx, DefaultBranch) },
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ShortHead returns the abbreviated hash of HEAD.
func (g *Repo) ShortHead(ctx context.Context) (string, error) {
	hash, err := g.run(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	if hash == "" || strings.Contains(hash, "\n") {
		return "", fmt.Errorf("git rev-parse returned unexpected output %q", hash)
	}
	return hash, nil
}

// CommitDate returns the ISO committer date of hash.
func (g *Repo) CommitDate(ctx context.Context, hash string) (string, error) {
	return g.run(ctx, "show", "-s", "--format=%cd", "--date=iso", hash)
}
