package cmdutil

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/buildben/cli/internal/cmdtypes"
	"github.com/buildben/cli/internal/output"
	"github.com/buildben/cli/internal/scaffold"
)

// Confirmer returns the overwrite confirmer for this invocation: --yes
// answers every prompt, otherwise the operator is asked on prompt.
func Confirmer(gc *cmdtypes.GlobalConfig, prompt io.Writer) scaffold.Confirmer {
	if gc.Yes {
		return scaffold.AutoConfirm{Answer: true}
	}
	return warningConfirmer{&scaffold.PromptConfirmer{In: gc.Stdin, Out: prompt}}
}

// warningConfirmer renders prompts in the warning style.
type warningConfirmer struct {
	next scaffold.Confirmer
}

func (w warningConfirmer) Confirm(prompt string) (bool, error) {
	return w.next.Confirm(output.StyleWarning.Render(prompt))
}

// FileTree renders the files of res under rootName, described by
// descriptions keyed on slash-separated relative paths.
func FileTree(rootName string, res *scaffold.Result, descriptions map[string]string) string {
	files := make(map[string]string, len(res.Files))
	for _, rel := range res.RelativeFiles() {
		files[rel] = descriptions[filepath.ToSlash(rel)]
	}
	return output.RenderFileTree(rootName, files)
}

// PrintScaffoldResult prints the completion line and the file tree.
func PrintScaffoldResult(title, rootName string, res *scaffold.Result, descriptions map[string]string) {
	output.Println(output.FormatCheckmark(title))
	output.Println("")
	output.Print(FileTree(rootName, res, descriptions))
}

// PrintNextSteps prints a "Next steps" block, one command per line.
func PrintNextSteps(steps ...string) {
	if len(steps) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(output.StyleBold.Render("Next steps:"))
	b.WriteString("\n")
	for _, s := range steps {
		fmt.Fprintf(&b, "  %s\n", s)
	}
	output.Print(b.String())
}
