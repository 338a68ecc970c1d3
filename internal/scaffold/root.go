package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSentinels mark a directory as a project root.
var DefaultSentinels = []string{".git", "pyproject.toml"}

// LocateEnclosingRoot returns the nearest directory, starting at start and
// walking up through its ancestors, that contains any of the sentinels.
// An empty start means the current working directory.
//
// A non-empty override is returned directly, made absolute, without
// walking and without checking for sentinels.
func LocateEnclosingRoot(start string, sentinels []string, override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(ExpandHome(override))
		if err != nil {
			return "", fmt.Errorf("resolving project root override %s: %w", override, err)
		}
		return abs, nil
	}

	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		start = wd
	}

	here, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	if resolved, err := filepath.EvalSymlinks(here); err == nil {
		here = resolved
	}

	for dir := here; ; {
		for _, s := range sentinels {
			if _, err := os.Lstat(filepath.Join(dir, s)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", &RootNotFoundError{Start: here, Sentinels: append([]string(nil), sentinels...)}
}

// ProjectDir returns the absolute directory for a new project named name
// under parent. A leading ~ in parent is expanded.
func ProjectDir(parent, name string) (string, error) {
	if parent == "" {
		parent = "."
	}
	abs, err := filepath.Abs(ExpandHome(parent))
	if err != nil {
		return "", fmt.Errorf("resolving target directory %s: %w", parent, err)
	}
	return filepath.Join(abs, name), nil
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// Other forms, including ~user, are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
