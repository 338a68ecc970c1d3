package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/buildben/cli/internal/errors"
)

func TestCopyTemplates_ByteForByte(t *testing.T) {
	content := []byte("#!/bin/sh\nprintf '\\x00\\xff'\n\x00\x01\x02binary tail")
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	root := fstest.MapFS{
		"proj/justfile": {Data: content, Mode: 0o755, ModTime: mtime},
	}
	dst := filepath.Join(t.TempDir(), "justfile")

	require.NoError(t, CopyTemplates(NewTransferMap("proj/justfile", dst), root))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestCopyTemplates_TruncatesExisting(t *testing.T) {
	root := fstest.MapFS{"a": {Data: []byte("short"), Mode: 0o644}}
	dst := filepath.Join(t.TempDir(), "a")
	require.NoError(t, os.WriteFile(dst, []byte("a much longer previous body"), 0o644))

	require.NoError(t, CopyTemplates(NewTransferMap("a", dst), root))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestCopyTemplates_MissingFirstStopsCopy(t *testing.T) {
	root := fstest.MapFS{"present": {Data: []byte("x"), Mode: 0o644}}
	dir := t.TempDir()
	second := filepath.Join(dir, "second")

	err := CopyTemplates(NewTransferMap(
		"missing", filepath.Join(dir, "first"),
		"present", second,
	), root)

	var notFound *TemplateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Identifier)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))

	_, statErr := os.Stat(second)
	assert.True(t, os.IsNotExist(statErr), "second template must not be copied")
}

func TestCopyTemplates_DirectoryIsNotATemplate(t *testing.T) {
	root := fstest.MapFS{"dir/file": {Data: []byte("x"), Mode: 0o644}}

	err := CopyTemplates(NewTransferMap("dir", filepath.Join(t.TempDir(), "out")), root)

	var notFound *TemplateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "dir", notFound.Identifier)
}

func TestCopyTemplates_InvalidIdentifier(t *testing.T) {
	err := CopyTemplates(NewTransferMap("../escape", filepath.Join(t.TempDir(), "out")), fstest.MapFS{})

	var notFound *TemplateNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCopyTemplates_ReplacesSymlink(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "victim")
	require.NoError(t, os.WriteFile(victim, []byte("precious"), 0o644))
	dst := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(victim, dst))

	root := fstest.MapFS{"t": {Data: []byte("template"), Mode: 0o644}}
	require.NoError(t, CopyTemplates(NewTransferMap("t", dst), root))

	li, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.True(t, li.Mode().IsRegular(), "destination is a regular file")

	got, err := os.ReadFile(victim)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(got), "link target is not written through")
}

func TestCopyTemplates_LastDestinationWins(t *testing.T) {
	root := fstest.MapFS{
		"one": {Data: []byte("one"), Mode: 0o644},
		"two": {Data: []byte("two"), Mode: 0o644},
	}
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, CopyTemplates(NewTransferMap("one", dst, "two", dst), root))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}
