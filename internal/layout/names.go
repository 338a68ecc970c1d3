package layout

import (
	"fmt"
	"regexp"
	"time"

	oerrors "github.com/buildben/cli/internal/errors"
)

// Python identifiers restricted to ASCII, which is what packaging tools accept.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DateLayout is the date prefix of experiment directories.
const DateLayout = "2006-01-02"

// ValidateProjectName checks that name can be used as a Python package name.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "", "")
	}
	if !identifierRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("project name %q must be a valid Python identifier", name),
			"",
			"use letters, digits and underscores, not starting with a digit",
		)
	}
	if isKeyword(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("project name %q is a reserved Python keyword", name),
			"",
			"",
		)
	}
	return nil
}

// ExperimentDirName returns the directory name of an experiment started on
// date, YYYY-MM-DD_<name>.
func ExperimentDirName(date time.Time, name string) string {
	return date.Format(DateLayout) + "_" + name
}

func isKeyword(s string) bool {
	switch s {
	case "False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else", "except",
		"finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield":
		return true
	default:
		return false
	}
}
