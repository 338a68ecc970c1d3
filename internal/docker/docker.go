// Package docker wraps the docker CLI calls used by env-snapshot.
package docker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/buildben/cli/internal/exec"
	"github.com/buildben/cli/internal/output"
)

// DefaultBinary is the docker executable name.
const DefaultBinary = "docker"

// DefaultProbeTimeout bounds the daemon liveness check.
const DefaultProbeTimeout = 5 * time.Second

// Client runs docker commands through a CommandRunner.
type Client struct {
	Runner       exec.CommandRunner
	Binary       string
	ProbeTimeout time.Duration
}

// New returns a Client for binary. Zero values fall back to the defaults.
func New(r exec.CommandRunner, binary string, probeTimeout time.Duration) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	return &Client{Runner: r, Binary: binary, ProbeTimeout: probeTimeout}
}

// Probe checks that the binary is installed and the daemon answers
// `docker info` within the probe timeout.
func (c *Client) Probe(ctx context.Context) error {
	if _, err := c.Runner.LookPath(c.Binary); err != nil {
		return &NotInstalledError{Binary: c.Binary}
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.ProbeTimeout)
	defer cancel()

	res, err := c.Runner.Run(probeCtx, c.Binary, []string{"info"}, exec.RunOpts{DiscardStdout: true})
	switch {
	case errors.Is(err, context.DeadlineExceeded) || probeCtx.Err() == context.DeadlineExceeded:
		return &DaemonNotRunningError{
			Binary: c.Binary,
			Reason: fmt.Sprintf("no answer within %s", c.ProbeTimeout),
		}
	case err != nil:
		return err
	case res.ExitCode != 0:
		return &DaemonNotRunningError{Binary: c.Binary, Reason: strings.TrimSpace(res.Stderr)}
	}

	output.Debug("docker daemon reachable", "binary", c.Binary)
	return nil
}

// BuildOptions configures an image build.
type BuildOptions struct {
	// Tag is the image reference, <project>:<commit>.
	Tag string

	// Dockerfile is the path of the Dockerfile.
	Dockerfile string

	// Context is the build context directory.
	Context string
}

// Args returns the docker build arguments.
func (o BuildOptions) Args() []string {
	return []string{"build", "--tag", o.Tag, "--file", o.Dockerfile, o.Context}
}

// Build runs `docker build`.
func (c *Client) Build(ctx context.Context, opts BuildOptions) error {
	output.Debug("building image", "tag", opts.Tag, "dockerfile", opts.Dockerfile)
	_, err := exec.Check(ctx, c.Runner, c.Binary, opts.Args(), exec.RunOpts{DiscardStdout: true})
	return err
}

// ImageSize returns the size of tag in human-readable form.
func (c *Client) ImageSize(ctx context.Context, tag string) (string, error) {
	res, err := exec.Check(ctx, c.Runner, c.Binary,
		[]string{"image", "inspect", "--format", "{{.Size}}", tag}, exec.RunOpts{})
	if err != nil {
		return "", err
	}
	raw := strings.TrimSpace(res.Stdout)
	size, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parsing image size %q: %w", raw, err)
	}
	return humanize.Bytes(size), nil
}
