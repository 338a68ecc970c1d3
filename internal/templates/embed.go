// Package templates provides the embedded scaffold templates and the
// text/template files used by env-snapshot.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	oerrors "github.com/buildben/cli/internal/errors"
)

// Template files start with "_" or "." and are only embedded via all:.
//
//go:embed all:proj all:experim snapshot
var assets embed.FS

// Set names a group of scaffold templates.
type Set string

const (
	// Project holds the files of a new src-layout project.
	Project Set = "proj"

	// Experiment holds the files of a dated experiment.
	Experiment Set = "experim"
)

// ValidSets returns every template set name.
func ValidSets() []string {
	return []string{string(Project), string(Experiment)}
}

// IsValidSet reports whether name is a template set.
func IsValidSet(name string) bool {
	switch Set(name) {
	case Project, Experiment:
		return true
	default:
		return false
	}
}

// FS returns the embedded template root. Sets are top-level directories,
// so identifiers look like "proj/_gitignore". Embedded files carry no
// permission bits; regular files report 0644, shell scripts 0755 and
// directories 0755.
func FS() fs.FS {
	return modeFS{fsys: assets}
}

// Root returns the template root for a configured directory, or the
// embedded one when dir is empty. An override directory uses the same
// layout as the embedded root and holds at least one template set.
func Root(dir string) (fs.FS, error) {
	if dir == "" {
		return FS(), nil
	}
	hint := "templatesDir must contain one of: " + strings.Join(ValidSets(), ", ")

	info, err := os.Stat(dir)
	if err != nil {
		return nil, oerrors.NewNotFoundError("templates directory not found", dir, hint)
	}
	if !info.IsDir() {
		return nil, oerrors.NewNotFoundError("templates directory is not a directory", dir, hint)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading templates directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() && IsValidSet(e.Name()) {
			return os.DirFS(dir), nil
		}
	}
	return nil, oerrors.NewNotFoundError("templates directory holds no template set", dir, hint)
}

// ID joins a set and a template file name into an identifier.
func ID(set Set, name string) string {
	return path.Join(string(set), name)
}

// modeFS reports canonical permission bits for an FS whose files have none.
type modeFS struct {
	fsys fs.FS
}

func (m modeFS) Open(name string) (fs.File, error) {
	f, err := m.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	return modeFile{File: f}, nil
}

func (m modeFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(m.fsys, name)
	if err != nil {
		return nil, err
	}
	out := make([]fs.DirEntry, len(entries))
	for i, e := range entries {
		out[i] = modeEntry{DirEntry: e}
	}
	return out, nil
}

func (m modeFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(m.fsys, name)
}

type modeFile struct {
	fs.File
}

func (f modeFile) Stat() (fs.FileInfo, error) {
	info, err := f.File.Stat()
	if err != nil {
		return nil, err
	}
	return modeInfo{FileInfo: info}, nil
}

type modeEntry struct {
	fs.DirEntry
}

func (e modeEntry) Info() (fs.FileInfo, error) {
	info, err := e.DirEntry.Info()
	if err != nil {
		return nil, err
	}
	return modeInfo{FileInfo: info}, nil
}

type modeInfo struct {
	fs.FileInfo
}

func (i modeInfo) Mode() fs.FileMode {
	return canonicalMode(i.FileInfo.Name(), i.FileInfo.IsDir())
}

func canonicalMode(name string, dir bool) fs.FileMode {
	switch {
	case dir:
		return fs.ModeDir | 0o755
	case strings.HasSuffix(name, ".sh"):
		return 0o755
	default:
		return 0o644
	}
}
