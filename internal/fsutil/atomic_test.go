package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".buildben-tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "experiment.env")

		require.NoError(t, WriteFileAtomic(path, []byte("COMMIT_HASH=abc\n"), 0o644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "COMMIT_HASH=abc\n", string(got))
		assertNoTempFiles(t, dir)
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "Dockerfile")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

		require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
		assertNoTempFiles(t, dir)
	})

	t.Run("applies permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.sh")
		require.NoError(t, WriteFileAtomic(path, []byte("#!/bin/sh\n"), 0o755))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("parent must exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "file")
		assert.Error(t, WriteFileAtomic(path, []byte("x"), 0o644))
	})
}

func TestTouch(t *testing.T) {
	t.Run("creates empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "__init__.py")
		require.NoError(t, Touch(path, 0o644))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("leaves existing file alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "__init__.py")
		require.NoError(t, os.WriteFile(path, []byte("from . import x\n"), 0o644))
		past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, past, past))

		require.NoError(t, Touch(path, 0o644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "from . import x\n", string(got))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(past))
	})
}
