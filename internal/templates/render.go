package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// SnapshotData is the data the env-snapshot templates render with.
type SnapshotData struct {
	// ProjectName is the Python package name.
	ProjectName string

	// ImageTag is <project>:<commit>.
	ImageTag string

	// CommitHash is the short hash of HEAD.
	CommitHash string

	// CommitDate is the committer date of HEAD in ISO format.
	CommitDate string

	// PythonBase is the base image of both build stages.
	PythonBase string

	// LockFile is the lock file path relative to the project root, with
	// forward slashes.
	LockFile string

	// TargetRel is the snapshot directory relative to the project root,
	// with forward slashes.
	TargetRel string
}

// Snapshot template names.
const (
	Dockerfile   = "Dockerfile.tmpl"
	Dockerignore = "dockerignore.tmpl"
)

// Render executes the named snapshot template with data.
func Render(name string, data SnapshotData) ([]byte, error) {
	content, err := assets.ReadFile("snapshot/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
