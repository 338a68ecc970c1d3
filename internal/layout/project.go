// Package layout declares what buildben scaffolds: the directory trees,
// template transfers, placeholders and package markers of a project and of
// an experiment.
package layout

import (
	"path/filepath"

	"github.com/buildben/cli/internal/markers"
	"github.com/buildben/cli/internal/scaffold"
	"github.com/buildben/cli/internal/templates"
)

// DefaultGitHubUser is used when no GitHub user is configured.
const DefaultGitHubUser = "github-user"

// UtilsModules are flattened into <name>.utils.
var UtilsModules = []string{"stdlib", "path_resolver"}

// Project returns the plan of a new src-layout project named name in root.
func Project(root, name, githubUser string) scaffold.Plan {
	pkg := filepath.Join(root, "src", name)
	utils := filepath.Join(pkg, "utils")
	assets := filepath.Join(root, "assets")
	inactive := filepath.Join(root, ".github", "workflows_inactive")

	id := func(file string) string { return templates.ID(templates.Project, file) }

	return scaffold.Plan{
		Target: root,
		Directories: []string{
			filepath.Join(root, "tests"),
			assets,
			filepath.Join(root, "examples"),
			filepath.Join(root, ".github", "workflows"),
			inactive,
			pkg,
			utils,
			filepath.Join(pkg, "data"),
			filepath.Join(pkg, "images"),
		},
		Transfers: scaffold.NewTransferMap(
			id("_gitignore"), filepath.Join(root, ".gitignore"),
			id("_pyproject.toml"), filepath.Join(root, "pyproject.toml"),
			id("_.envrc"), filepath.Join(root, ".envrc"),
			id("_.env.template"), filepath.Join(root, ".env.template"),
			id("_justfile"), filepath.Join(root, "justfile"),

			id("_github-codecov.yml"), filepath.Join(inactive, "codecov.yml"),
			id("_github-CI_ubuntu_uv.yml"), filepath.Join(inactive, "CI_ubuntu_uv.yml"),

			id("_src-main.py"), filepath.Join(pkg, "main.py"),
			id("_src-paths.py"), filepath.Join(pkg, "paths.py"),
			id("_utils-stdlib.py"), filepath.Join(utils, "stdlib.py"),
			id("_utils-path_resolver.py"), filepath.Join(utils, "path_resolver.py"),

			// Git-ignored until renamed by hand.
			id("_README.IGNORE.md"), filepath.Join(root, "README.IGNORE.md"),
			id("_assets-flowchart.IGNORE.mmd"), filepath.Join(assets, "flowchart.IGNORE.mmd"),
			id("_assets-classdiagram.IGNORE.mmd"), filepath.Join(assets, "classdiagram.IGNORE.mmd"),
			id("_assets-diagram.IGNORE.puml"), filepath.Join(assets, "diagram.IGNORE.puml"),
		),
		Placeholders: scaffold.NewPlaceholderMap(
			"<my_project>", name,
			"{my_project}", name,
			"<github_username>", githubUser,
			"{github_username}", githubUser,
		),
		Markers: []scaffold.MarkerSpec{
			{Dir: pkg},
			{Dir: utils, Modules: UtilsModules, Options: markers.Options{Flatten: true}},
		},
	}
}
