package config

import (
	"os"

	"github.com/buildben/cli/internal/output"
)

// Environment variables read by the resolver.
const (
	EnvConfig       = "BUILDBEN_CONFIG"
	EnvGitHubUser   = "BUILDBEN_GITHUB_USER"
	EnvTemplatesDir = "BUILDBEN_TEMPLATES_DIR"
	EnvPythonBase   = "BUILDBEN_PYTHON_BASE"
	EnvDockerBinary = "BUILDBEN_DOCKER_BINARY"
	EnvProbeTimeout = "BUILDBEN_DOCKER_PROBE_TIMEOUT"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions lists the candidate values of one key.
type ResolveOptions struct {
	Key         string
	FlagValue   string
	EnvVar      string
	ConfigValue string
	Default     string
}

// Resolve picks the first non-empty value using precedence
// flag > env > config > default. A key with no value at all keeps an
// empty Source.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{Key: opts.Key, Shadowed: make(map[ConfigSource]string)}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BUILDBEN_CONFIG env, (3) ~/.buildben/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return Resolve(ResolveOptions{
		Key:       "config",
		FlagValue: flagValue,
		EnvVar:    EnvConfig,
		Default:   paths.ConfigFile,
	}), nil
}

// ResolveAllOptions carries the command-line values and the loaded file.
type ResolveAllOptions struct {
	GitHubUserFlag string
	PythonBaseFlag string
	Config         *Config
}

// ResolvedConfig holds every resolved value.
type ResolvedConfig struct {
	GitHubUser   ResolvedValue
	TemplatesDir ResolvedValue
	PythonBase   ResolvedValue
	DockerBinary ResolvedValue
	ProbeTimeout ResolvedValue
}

// ResolveAll resolves each configuration key.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &ResolvedConfig{
		GitHubUser: Resolve(ResolveOptions{
			Key:         "githubUser",
			FlagValue:   opts.GitHubUserFlag,
			EnvVar:      EnvGitHubUser,
			ConfigValue: cfg.GitHubUser,
			Default:     DefaultGitHubUser,
		}),
		TemplatesDir: Resolve(ResolveOptions{
			Key:         "templatesDir",
			EnvVar:      EnvTemplatesDir,
			ConfigValue: cfg.TemplatesDir,
		}),
		PythonBase: Resolve(ResolveOptions{
			Key:         "pythonBase",
			FlagValue:   opts.PythonBaseFlag,
			EnvVar:      EnvPythonBase,
			ConfigValue: cfg.PythonBase,
			Default:     DefaultPythonBase,
		}),
		DockerBinary: Resolve(ResolveOptions{
			Key:         "docker.binary",
			EnvVar:      EnvDockerBinary,
			ConfigValue: cfg.Docker.Binary,
			Default:     DefaultDockerBinary,
		}),
		ProbeTimeout: Resolve(ResolveOptions{
			Key:         "docker.probeTimeout",
			EnvVar:      EnvProbeTimeout,
			ConfigValue: cfg.Docker.ProbeTimeout,
			Default:     DefaultProbeTimeout,
		}),
	}
}

// Values returns the resolved values in a fixed order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.GitHubUser, r.TemplatesDir, r.PythonBase, r.DockerBinary, r.ProbeTimeout}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
