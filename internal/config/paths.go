package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for buildben.
type Paths struct {
	// ConfigFile is the path to the config file (~/.buildben/config.yaml).
	ConfigFile string

	// HomeDir is the buildben home directory (~/.buildben).
	HomeDir string
}

// DefaultPaths returns the default paths for buildben.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".buildben")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
