// Package markers generates Python package marker files (__init__.py).
//
// A marker either stays empty or re-exports its sibling modules. With
// flattening enabled, the top-level functions of each module are imported
// into the package namespace as well, so callers can write
// `from pkg.utils import timestamp` instead of naming the submodule.
package markers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/buildben/cli/internal/fsutil"
	"github.com/buildben/cli/internal/output"
)

// FileName is the marker file written into each package directory.
const FileName = "__init__.py"

// Options control what a marker re-exports.
type Options struct {
	// Flatten imports each module's top-level functions by name.
	Flatten bool

	// IncludePrivate keeps names starting with an underscore.
	IncludePrivate bool
}

// ModuleExports lists the functions one module contributes to the marker.
type ModuleExports struct {
	Module    string
	Functions []string
}

// Path returns the marker file path for a package directory.
func Path(packageDir string) string {
	return filepath.Join(packageDir, FileName)
}

// Generate writes the marker file of packageDir. With no modules the file
// is created empty if absent and never modified otherwise. Collisions and
// missing modules are detected before anything is written.
func Generate(packageDir string, modules []string, opts Options) error {
	path := Path(packageDir)

	if len(modules) == 0 {
		output.Debug("touching package marker", "path", path)
		return fsutil.Touch(path, 0o644)
	}

	exports, err := Collect(packageDir, dedupe(modules), opts)
	if err != nil {
		return err
	}

	output.Debug("writing package marker", "path", path, "modules", len(exports), "flatten", opts.Flatten)
	if err := fsutil.WriteFileAtomic(path, []byte(Render(exports)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Collect resolves the exports of each module in order. Without Flatten
// no module file is read and every entry has no functions.
func Collect(packageDir string, modules []string, opts Options) ([]ModuleExports, error) {
	exports := make([]ModuleExports, 0, len(modules))
	owners := make(map[string]string)

	for _, mod := range modules {
		entry := ModuleExports{Module: mod}
		if !opts.Flatten {
			exports = append(exports, entry)
			continue
		}

		src, err := readModule(packageDir, mod)
		if err != nil {
			return nil, err
		}

		for _, name := range TopLevelFunctions(src) {
			if !opts.IncludePrivate && strings.HasPrefix(name, "_") {
				continue
			}
			if owner, ok := owners[name]; ok {
				if owner != mod {
					return nil, &NameCollisionError{Name: name, First: owner, Second: mod}
				}
				// Redefinition inside one module.
				continue
			}
			owners[name] = mod
			entry.Functions = append(entry.Functions, name)
		}
		sort.Strings(entry.Functions)
		exports = append(exports, entry)
	}

	return exports, nil
}

// Render produces marker file content: one relative import of every module,
// then one parenthesized import block per module that exports functions.
func Render(exports []ModuleExports) string {
	if len(exports) == 0 {
		return ""
	}

	names := make([]string, 0, len(exports))
	for _, e := range exports {
		names = append(names, e.Module)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "from . import %s\n", strings.Join(names, ", "))

	for _, e := range exports {
		if len(e.Functions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nfrom .%s import (\n", e.Module)
		for _, fn := range e.Functions {
			fmt.Fprintf(&b, "    %s,\n", fn)
		}
		b.WriteString(")\n")
	}

	return b.String()
}

func readModule(packageDir, mod string) ([]byte, error) {
	candidates := []string{
		filepath.Join(packageDir, mod+".py"),
		filepath.Join(packageDir, mod, FileName),
	}
	for _, p := range candidates {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading module %s: %w", p, err)
		}
		return src, nil
	}
	return nil, &ModuleNotFoundError{Module: mod, Dir: packageDir}
}

func dedupe(modules []string) []string {
	seen := make(map[string]bool, len(modules))
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
