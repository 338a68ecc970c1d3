// Package config loads buildben's user configuration and the project
// environment.
package config

import (
	"fmt"
	"time"
)

// Defaults for values that are neither configured nor given on the command line.
const (
	DefaultGitHubUser   = "github-user"
	DefaultPythonBase   = "python:3.12-slim"
	DefaultDockerBinary = "docker"
	DefaultProbeTimeout = "5s"
)

// DockerConfig contains container engine settings.
type DockerConfig struct {
	// Binary is the container engine executable.
	// Env: BUILDBEN_DOCKER_BINARY, Default: docker
	Binary string `mapstructure:"binary" yaml:"binary,omitempty"`

	// ProbeTimeout bounds the daemon liveness check, as a Go duration.
	// Env: BUILDBEN_DOCKER_PROBE_TIMEOUT, Default: 5s
	ProbeTimeout string `mapstructure:"probeTimeout" yaml:"probeTimeout,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the buildben user configuration.
// Loaded from ~/.buildben/config.yaml, validated by `config vet` against
// an embedded CUE schema.
type Config struct {
	// GitHubUser is substituted into new projects.
	// Env: BUILDBEN_GITHUB_USER
	GitHubUser string `mapstructure:"githubUser" yaml:"githubUser,omitempty"`

	// TemplatesDir replaces the embedded templates with a directory of the
	// same layout.
	// Env: BUILDBEN_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// PythonBase is the base image of snapshot Dockerfiles.
	// Env: BUILDBEN_PYTHON_BASE
	PythonBase string `mapstructure:"pythonBase" yaml:"pythonBase,omitempty"`

	Docker DockerConfig `mapstructure:"docker" yaml:"docker,omitempty"`

	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `buildben config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		GitHubUser: DefaultGitHubUser,
		PythonBase: DefaultPythonBase,
		Docker: DockerConfig{
			Binary:       DefaultDockerBinary,
			ProbeTimeout: DefaultProbeTimeout,
		},
		Log: LogConfig{Timestamps: &timestamps},
	}
}

// ParseProbeTimeout parses a probe timeout, which must be positive.
func ParseProbeTimeout(s string) (time.Duration, error) {
	if s == "" {
		s = DefaultProbeTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("docker.probeTimeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("docker.probeTimeout: must be positive, got %s", s)
	}
	return d, nil
}
