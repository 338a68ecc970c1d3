// Package scaffold materializes project trees from templates: it guards the
// target against accidental overwrite, creates a declared directory
// skeleton, copies templates, substitutes placeholders and generates
// package marker files.
package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/buildben/cli/internal/markers"
)

// MarkerSpec declares one package marker file to generate.
type MarkerSpec struct {
	// Dir is the package directory that receives the marker file.
	Dir string

	// Modules are the sibling modules to import, in order.
	Modules []string

	// Options control flattening and private-name handling.
	Options markers.Options
}

// Plan is the declarative description of one scaffold.
type Plan struct {
	// Target is the directory checked by the overwrite guard.
	Target string

	// Directories are created before anything is copied.
	Directories []string

	// Transfers map template identifiers to destination paths.
	Transfers *TransferMap

	// Placeholders are substituted into every transfer destination.
	Placeholders *PlaceholderMap

	// Markers are generated after substitution, in order.
	Markers []MarkerSpec
}

// Result lists what a scaffold produced.
type Result struct {
	// Target is the scaffolded directory.
	Target string

	// Files are the written files, in creation order.
	Files []string
}

// RelativeFiles returns Files relative to Target, for display.
func (r *Result) RelativeFiles() []string {
	out := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		rel, err := filepath.Rel(r.Target, f)
		if err != nil {
			rel = f
		}
		out = append(out, rel)
	}
	return out
}

// Scaffolder runs plans against a template source.
type Scaffolder struct {
	// Templates is the root all transfer identifiers resolve against.
	Templates fs.FS

	// Confirmer answers the overwrite prompt.
	Confirmer Confirmer
}

// New returns a Scaffolder reading templates from fsys.
func New(fsys fs.FS, c Confirmer) *Scaffolder {
	return &Scaffolder{Templates: fsys, Confirmer: c}
}

// Run executes plan: guard, directories, copy, substitute, markers.
// A declined overwrite returns before anything is touched. Any later
// failure leaves the partially written tree in place; running the plan
// again after fixing the cause completes it.
func (s *Scaffolder) Run(plan Plan) (*Result, error) {
	if err := ConfirmOrAbort(plan.Target, s.Confirmer); err != nil {
		return nil, err
	}

	if err := EnsureDirectories(plan.Directories); err != nil {
		return nil, err
	}

	transfers := plan.Transfers
	if transfers == nil {
		transfers = NewTransferMap()
	}
	if err := CopyTemplates(transfers, s.Templates); err != nil {
		return nil, fmt.Errorf("copying templates: %w", err)
	}

	files := transfers.Values()
	if plan.Placeholders != nil && plan.Placeholders.Len() > 0 {
		if err := Substitute(files, plan.Placeholders); err != nil {
			return nil, fmt.Errorf("substituting placeholders: %w", err)
		}
	}

	result := &Result{Target: plan.Target, Files: files}

	for _, m := range plan.Markers {
		if err := markers.Generate(m.Dir, m.Modules, m.Options); err != nil {
			return nil, fmt.Errorf("generating package marker in %s: %w", m.Dir, err)
		}
		result.Files = append(result.Files, markers.Path(m.Dir))
	}

	return result, nil
}
