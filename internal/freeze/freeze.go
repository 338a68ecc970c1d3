// Package freeze pins the project environment into a hashed lock file.
package freeze

import (
	"context"

	"github.com/buildben/cli/internal/exec"
	"github.com/buildben/cli/internal/output"
)

// Binary is the pip-tools compiler executable.
const Binary = "pip-compile"

// LockFileName is the lock file written into a snapshot directory.
const LockFileName = "requirements.lock"

// Compiler runs pip-compile from Dir.
type Compiler struct {
	Runner exec.CommandRunner
	Dir    string
}

// NewCompiler returns a Compiler running in dir.
func NewCompiler(r exec.CommandRunner, dir string) *Compiler {
	return &Compiler{Runner: r, Dir: dir}
}

// Args returns the pip-compile arguments for manifest and out.
func Args(manifest, out string) []string {
	return []string{
		"--generate-hashes",
		"--allow-unsafe",
		"--extra", "dev",
		"--output-file", out,
		manifest,
	}
}

// Compile resolves manifest, including the dev extra, into out with hashes.
func (c *Compiler) Compile(ctx context.Context, manifest, out string) error {
	output.Debug("compiling lock file", "manifest", manifest, "output", out)
	_, err := exec.Check(ctx, c.Runner, Binary, Args(manifest, out), exec.RunOpts{
		Dir:           c.Dir,
		DiscardStdout: true,
	})
	return err
}
