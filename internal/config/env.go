package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Project environment variables.
const (
	EnvProjectRoot = "PROJECT_ROOT"
	EnvProjectName = "PROJECT_NAME"
)

// DefaultDotenvFiles are layered in order; later files override earlier ones.
var DefaultDotenvFiles = []string{".env", ".env.secret"}

// Environment is the project environment, captured once at startup and
// passed to the commands that need it.
type Environment struct {
	// Root is the project root directory.
	Root string

	// ProjectName is PROJECT_NAME, or the base name of Root.
	ProjectName string

	// Files lists the dotenv files that were read, in order.
	Files []string

	process map[string]string
	dotenv  map[string]string
}

// ProcessEnv snapshots the process environment.
func ProcessEnv() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			env[k] = v
		}
	}
	return env
}

// RootOverride returns PROJECT_ROOT from the captured process environment.
func RootOverride(process map[string]string) string {
	return process[EnvProjectRoot]
}

// LoadEnvironment layers the dotenv files (relative paths resolve against
// root) and the process environment, which wins over every file. Missing
// files are skipped. Dotenv keys are case-insensitive.
func LoadEnvironment(root string, files []string, process map[string]string) (*Environment, error) {
	v := viper.New()
	env := &Environment{Root: root, process: process, dotenv: make(map[string]string)}

	for _, f := range files {
		p := f
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, f)
		}
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		v.SetConfigFile(p)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("parsing dotenv file %s: %w", p, err)
		}
		env.Files = append(env.Files, p)
	}

	for _, k := range v.AllKeys() {
		env.dotenv[strings.ToUpper(k)] = v.GetString(k)
	}

	env.ProjectName = env.Get(EnvProjectName)
	if env.ProjectName == "" {
		env.ProjectName = filepath.Base(root)
	}

	return env, nil
}

// Lookup returns the value of key from the process environment, falling
// back to the dotenv files.
func (e *Environment) Lookup(key string) (string, bool) {
	if v, ok := e.process[key]; ok {
		return v, true
	}
	v, ok := e.dotenv[strings.ToUpper(key)]
	return v, ok
}

// Get is Lookup without the presence flag.
func (e *Environment) Get(key string) string {
	v, _ := e.Lookup(key)
	return v
}
