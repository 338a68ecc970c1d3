package layout

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/markers"
	"github.com/buildben/cli/internal/scaffold"
	"github.com/buildben/cli/internal/templates"
)

var testDate = time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "demo", false},
		{"underscores and digits", "my_proj2", false},
		{"leading underscore", "_private", false},
		{"empty", "", true},
		{"leading digit", "2fast", true},
		{"dash", "my-proj", true},
		{"space", "my proj", true},
		{"keyword", "class", true},
		{"non-ascii", "größe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateExperimentName(t *testing.T) {
	assert.NoError(t, ValidateExperimentName("baseline"))
	assert.NoError(t, ValidateExperimentName(""))
	assert.Error(t, ValidateExperimentName("a/b"))
	assert.Error(t, ValidateExperimentName(`a\b`))
	assert.Error(t, ValidateExperimentName(".."))
}

func TestExperimentDirName(t *testing.T) {
	assert.Equal(t, "2026-10-14_trial1", ExperimentDirName(testDate, "trial1"))
	assert.Equal(t, "2026-10-14_", ExperimentDirName(testDate, ""))
}

func assertTemplatesExist(t *testing.T, plan scaffold.Plan) {
	t.Helper()
	for _, id := range plan.Transfers.Keys() {
		info, err := fs.Stat(templates.FS(), id)
		if assert.NoError(t, err, "template %s", id) {
			assert.True(t, info.Mode().IsRegular(), "template %s", id)
		}
	}
}

func assertEverySetFilePlaced(t *testing.T, set templates.Set, plan scaffold.Plan) {
	t.Helper()
	var files []string
	require.NoError(t, fs.WalkDir(templates.FS(), string(set), func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, p)
		}
		return err
	}))
	assert.ElementsMatch(t, files, plan.Transfers.Keys())
}

func TestProject_TemplatesExist(t *testing.T) {
	plan := Project("/work/demo", "demo", "octo")
	assertTemplatesExist(t, plan)
	assertEverySetFilePlaced(t, templates.Project, plan)
}

func TestExperiment_TemplatesExist(t *testing.T) {
	plan := Experiment("/work/demo", testDate, "trial1", "demo")
	assertTemplatesExist(t, plan)
	assertEverySetFilePlaced(t, templates.Experiment, plan)
}

func TestProject_Scaffold(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	plan := Project(root, "demo", "octo")

	res, err := scaffold.New(templates.FS(), scaffold.AutoConfirm{}).Run(plan)
	require.NoError(t, err)

	for _, dir := range plan.Directories {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	for _, f := range plan.Transfers.Values() {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, tok := range plan.Placeholders.Keys() {
			assert.NotContains(t, string(data), tok, "placeholder left in %s", f)
		}
	}

	pyproject, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `name = "demo"`)
	assert.Contains(t, string(pyproject), "https://github.com/octo/demo")

	pkgMarker, err := os.ReadFile(markers.Path(filepath.Join(root, "src", "demo")))
	require.NoError(t, err)
	assert.Empty(t, pkgMarker)

	utilsMarker, err := os.ReadFile(markers.Path(filepath.Join(root, "src", "demo", "utils")))
	require.NoError(t, err)
	want := "from . import stdlib, path_resolver\n" +
		"\n" +
		"from .stdlib import (\n" +
		"    deep_get,\n" +
		"    deep_merge,\n" +
		"    deep_set,\n" +
		"    timer,\n" +
		")\n" +
		"\n" +
		"from .path_resolver import (\n" +
		"    get_local_dir_from_env,\n" +
		"    package_root_dir,\n" +
		"    require_env,\n" +
		")\n"
	assert.Equal(t, want, string(utilsMarker))

	rel := res.RelativeFiles()
	assert.Contains(t, rel, ".gitignore")
	assert.Contains(t, rel, filepath.Join("src", "demo", "utils", "__init__.py"))
}

func TestExperiment_Scaffold(t *testing.T) {
	root := t.TempDir()
	plan := Experiment(root, testDate, "trial1", "demo")

	_, err := scaffold.New(templates.FS(), scaffold.AutoConfirm{}).Run(plan)
	require.NoError(t, err)

	exp := filepath.Join(root, "experiments", "2026-10-14_trial1")
	assert.Equal(t, exp, plan.Target)
	for _, sub := range []string{"input", "interm-output", "output", "scripts"} {
		assert.DirExists(t, filepath.Join(exp, sub))
	}
	assert.DirExists(t, filepath.Join(root, "experiments", "resources"))

	report, err := os.ReadFile(filepath.Join(exp, "REPORT.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(report), "# Experiment: trial1\n"))
	assert.Contains(t, string(report), "experiments/2026-10-14_trial1")
	assert.Contains(t, string(report), "**Project:** demo")
	assert.Contains(t, string(report), "**Started:** 2026-10-14")

	paths, err := os.ReadFile(filepath.Join(exp, ".paths.env"))
	require.NoError(t, err)
	assert.Contains(t, string(paths), "EXPERIMENT_NAME=trial1\n")
	assert.Contains(t, string(paths), "D_INPUT=experiments/2026-10-14_trial1/input\n")

	script, err := os.ReadFile(filepath.Join(exp, "scripts", "exp.py"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "import demo.utils as ut")
}
