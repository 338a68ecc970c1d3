package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildben/cli/internal/markers"
)

func TestScaffolder_ExperimentReport(t *testing.T) {
	parent := t.TempDir()
	exp := filepath.Join(parent, "2026-10-14_trial1")
	root := fstest.MapFS{
		"_REPORT.md": {Data: []byte("Experiment: <experiment_name>"), Mode: 0o644},
	}

	s := New(root, AutoConfirm{Answer: false})
	res, err := s.Run(Plan{
		Target:       exp,
		Directories:  []string{exp},
		Transfers:    NewTransferMap("_REPORT.md", filepath.Join(exp, "REPORT.md")),
		Placeholders: NewPlaceholderMap("<experiment_name>", "trial1"),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(exp, "REPORT.md"))
	require.NoError(t, err)
	assert.Equal(t, "Experiment: trial1", string(got))
	assert.Equal(t, []string{"REPORT.md"}, res.RelativeFiles())
}

func TestScaffolder_DeclinedOverwriteHasNoSideEffects(t *testing.T) {
	target := t.TempDir()
	existing := filepath.Join(target, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o644))

	root := fstest.MapFS{"README.md": {Data: []byte("template"), Mode: 0o644}}
	s := New(root, AutoConfirm{Answer: false})

	_, err := s.Run(Plan{
		Target:      target,
		Directories: []string{filepath.Join(target, "src")},
		Transfers:   NewTransferMap("README.md", existing),
		Markers:     []MarkerSpec{{Dir: target}},
	})

	var abort *UserAbortError
	require.True(t, errors.As(err, &abort))

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no directory or marker was created")
	assert.Equal(t, "README.md", entries[0].Name())
}

func TestScaffolder_AcceptedOverwrite(t *testing.T) {
	target := t.TempDir()
	existing := filepath.Join(target, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o644))

	root := fstest.MapFS{"README.md": {Data: []byte("# <my_project>"), Mode: 0o644}}
	s := New(root, AutoConfirm{Answer: true})

	_, err := s.Run(Plan{
		Target:       target,
		Transfers:    NewTransferMap("README.md", existing),
		Placeholders: NewPlaceholderMap("<my_project>", "demo"),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "# demo", string(got))
}

func TestScaffolder_GeneratesMarkersAfterSubstitution(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	pkg := filepath.Join(target, "src", "demo")
	utils := filepath.Join(pkg, "utils")
	root := fstest.MapFS{
		"stdlib.py": {Data: []byte("def <my_project>_helper():\n    pass\n"), Mode: 0o644},
	}

	s := New(root, AutoConfirm{})
	res, err := s.Run(Plan{
		Target:       target,
		Directories:  []string{utils},
		Transfers:    NewTransferMap("stdlib.py", filepath.Join(utils, "stdlib.py")),
		Placeholders: NewPlaceholderMap("<my_project>", "demo"),
		Markers: []MarkerSpec{
			{Dir: pkg},
			{Dir: utils, Modules: []string{"stdlib"}, Options: markers.Options{Flatten: true}},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(markers.Path(utils))
	require.NoError(t, err)
	assert.Contains(t, string(data), "    demo_helper,\n")

	data, err = os.ReadFile(markers.Path(pkg))
	require.NoError(t, err)
	assert.Empty(t, data)

	assert.Equal(t, []string{
		filepath.Join("src", "demo", "utils", "stdlib.py"),
		filepath.Join("src", "demo", "__init__.py"),
		filepath.Join("src", "demo", "utils", "__init__.py"),
	}, res.RelativeFiles())
}

func TestScaffolder_MissingTemplate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	s := New(fstest.MapFS{}, AutoConfirm{})

	_, err := s.Run(Plan{
		Target:      target,
		Directories: []string{target},
		Transfers:   NewTransferMap("gone.txt", filepath.Join(target, "gone.txt")),
	})

	var notFound *TemplateNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
