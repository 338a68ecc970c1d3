package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/buildben/cli/internal/exec"
)

// Call records one invocation seen by a StubRunner.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// String renders the call as a command line.
func (c Call) String() string {
	return exec.CommandLine(c.Name, c.Args)
}

// StubRunner is an exec.CommandRunner answering from canned responses.
// Unmatched commands succeed with empty output.
type StubRunner struct {
	responses map[string]stubResponse
	missing   map[string]bool

	// Calls records every Run in order.
	Calls []Call
}

type stubResponse struct {
	result exec.CmdResult
	err    error
	hook   func(ctx context.Context, opts exec.RunOpts) (exec.CmdResult, error)
}

// NewStubRunner returns an empty StubRunner.
func NewStubRunner() *StubRunner {
	return &StubRunner{
		responses: make(map[string]stubResponse),
		missing:   make(map[string]bool),
	}
}

func stubKey(name string, args []string) string {
	return name + "|" + strings.Join(args, "\x00")
}

// On sets the result of name with exactly args.
func (s *StubRunner) On(name string, args []string, result exec.CmdResult) *StubRunner {
	s.responses[stubKey(name, args)] = stubResponse{result: result}
	return s
}

// OnError makes name with exactly args fail to execute.
func (s *StubRunner) OnError(name string, args []string, err error) *StubRunner {
	s.responses[stubKey(name, args)] = stubResponse{err: err}
	return s
}

// OnFunc answers name with exactly args by calling fn, which can inspect
// the context or write files the real command would produce.
func (s *StubRunner) OnFunc(name string, args []string, fn func(ctx context.Context, opts exec.RunOpts) (exec.CmdResult, error)) *StubRunner {
	s.responses[stubKey(name, args)] = stubResponse{hook: fn}
	return s
}

// Missing makes LookPath fail for name.
func (s *StubRunner) Missing(name string) *StubRunner {
	s.missing[name] = true
	return s
}

// Run implements exec.CommandRunner.
func (s *StubRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.Calls = append(s.Calls, Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir})

	resp, ok := s.responses[stubKey(name, args)]
	if !ok {
		return exec.CmdResult{}, nil
	}
	if resp.hook != nil {
		return resp.hook(ctx, opts)
	}
	return resp.result, resp.err
}

// LookPath implements exec.CommandRunner.
func (s *StubRunner) LookPath(name string) (string, error) {
	if s.missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded call rendered as a command line.
func (s *StubRunner) CommandLines() []string {
	out := make([]string, len(s.Calls))
	for i, c := range s.Calls {
		out[i] = c.String()
	}
	return out
}
