// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd so internal/cmdutil can use it without
// an import cycle.
package cmdtypes

import (
	"io"
	"os"
	"time"

	"github.com/buildben/cli/internal/config"
	"github.com/buildben/cli/internal/exec"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is created once per root command and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded user config file, never nil after pre-run.
	Config *config.Config

	// Resolved holds every configuration value with its provenance.
	Resolved *config.ResolvedConfig

	// ConfigPath is the resolved --config path.
	ConfigPath string

	Verbose bool

	// Yes answers every overwrite prompt affirmatively.
	Yes bool

	// Runner executes git, docker and pip-compile.
	Runner exec.CommandRunner

	// Now is the clock experiments are dated with.
	Now func() time.Time

	// Stdin feeds the overwrite prompt.
	Stdin io.Reader

	// Env is the process environment captured at startup.
	Env map[string]string
}

// NewGlobalConfig returns a GlobalConfig wired to the real process.
func NewGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Runner: exec.NewRealRunner(),
		Now:    time.Now,
		Stdin:  os.Stdin,
		Env:    config.ProcessEnv(),
	}
}

// ResolvedConfig returns Resolved, resolving built-in defaults when the
// pre-run has not populated it.
func (g *GlobalConfig) ResolvedConfig() *config.ResolvedConfig {
	if g.Resolved == nil {
		g.Resolved = config.ResolveAll(config.ResolveAllOptions{Config: g.Config})
	}
	return g.Resolved
}
