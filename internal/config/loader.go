package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Loader reads the user config file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads the YAML config file at path. A missing file is not an error
// and yields an empty Config; environment variables and flags are layered
// on top by ResolveAll.
func (l *Loader) Load(path string) (*Config, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	l.v.SetConfigFile(expanded)
	l.v.SetConfigType("yaml")
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", expanded, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists reports whether the config file at path exists.
func Exists(path string) (bool, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
