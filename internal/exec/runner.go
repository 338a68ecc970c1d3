// Package exec provides a stub-friendly interface for running external commands.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/buildben/cli/internal/errors"
)

// CmdResult holds the result of a command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)

	// DiscardStdout drops standard output instead of capturing it.
	DiscardStdout bool
}

// CommandRunner is the interface for running external commands.
type CommandRunner interface {
	// Run executes a command and returns the result.
	// Returns CmdResult with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)

	// LookPath resolves an executable name like os/exec.LookPath.
	LookPath(name string) (string, error)
}

// RealRunner is the production implementation of CommandRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if opts.DiscardStdout {
		cmd.Stdout = io.Discard
	}
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		return result, err
	}

	return result, nil
}

// LookPath implements CommandRunner.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CommandLine renders name and args for messages.
func CommandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// Check runs the command and turns a non-zero exit into an
// *errors.CommandError carrying the process's stderr.
func Check(ctx context.Context, r CommandRunner, name string, args []string, opts RunOpts) (CmdResult, error) {
	res, err := r.Run(ctx, name, args, opts)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, &oerrors.CommandError{
			Command:  CommandLine(name, args),
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}
	return res, nil
}
