package layout

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	oerrors "github.com/buildben/cli/internal/errors"
	"github.com/buildben/cli/internal/scaffold"
	"github.com/buildben/cli/internal/templates"
)

// ExperimentsDir is the directory under the project root holding experiments.
const ExperimentsDir = "experiments"

// ValidateExperimentName rejects names that would escape the experiments
// directory. An empty name is allowed and yields a bare date directory.
func ValidateExperimentName(name string) error {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return oerrors.NewValidationError(
			fmt.Sprintf("experiment name %q must not contain path separators", name),
			"",
			"",
		)
	}
	return nil
}

// ExperimentDir returns the directory of experiment name started on date.
func ExperimentDir(projectRoot string, date time.Time, name string) string {
	return filepath.Join(projectRoot, ExperimentsDir, ExperimentDirName(date, name))
}

// Experiment returns the plan of experiment name, started on date, inside
// the project at projectRoot.
func Experiment(projectRoot string, date time.Time, name, projectName string) scaffold.Plan {
	full := ExperimentDirName(date, name)
	today := date.Format(DateLayout)
	exp := ExperimentDir(projectRoot, date, name)

	id := func(file string) string { return templates.ID(templates.Experiment, file) }

	return scaffold.Plan{
		Target: exp,
		Directories: []string{
			// Shared material, copied into an experiment's input by hand.
			filepath.Join(projectRoot, ExperimentsDir, "resources"),
			filepath.Join(exp, "input"),
			filepath.Join(exp, "interm-output"),
			filepath.Join(exp, "output"),
			filepath.Join(exp, "scripts"),
		},
		Transfers: scaffold.NewTransferMap(
			id("_REPORT.md"), filepath.Join(exp, "REPORT.md"),
			id("_run.py"), filepath.Join(exp, "run.py"),
			id("_paths.env"), filepath.Join(exp, ".paths.env"),
			id("_scripts_exp.py"), filepath.Join(exp, "scripts", "exp.py"),
			id("_scripts_eval.py"), filepath.Join(exp, "scripts", "eval.py"),
		),
		// The closing ">" keeps <experiment_name> from matching inside
		// <experiment_name_full>.
		Placeholders: scaffold.NewPlaceholderMap(
			"<experiment_name>", name,
			"{experiment_name}", name,
			"<experiment_name_full>", full,
			"{experiment_name_full}", full,
			"<bb_today>", today,
			"{bb_today}", today,
			"<my_project>", projectName,
			"{my_project}", projectName,
		),
	}
}
