package version

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/buildben/cli/internal/exec"
)

// toolVersionRegex matches version numbers like "2.43.0" or "v7.4.1".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// Tool names an external program buildben shells out to.
type Tool struct {
	Name        string
	VersionArgs []string

	// Purpose is shown next to a missing tool.
	Purpose string
}

// Tools lists the external programs, in display order.
var Tools = []Tool{
	{Name: "git", VersionArgs: []string{"--version"}, Purpose: "init-proj --git-init, env-snapshot"},
	{Name: "pip-compile", VersionArgs: []string{"--version"}, Purpose: "env-snapshot"},
	{Name: "docker", VersionArgs: []string{"--version"}, Purpose: "env-snapshot --docker"},
}

// ToolInfo describes a detected tool.
type ToolInfo struct {
	Name    string
	Path    string
	Version string
	Found   bool
	Message string
}

// DetectTool looks tool up on PATH and asks it for its version.
func DetectTool(ctx context.Context, r exec.CommandRunner, tool Tool) ToolInfo {
	path, err := r.LookPath(tool.Name)
	if err != nil {
		return ToolInfo{Name: tool.Name, Message: "not found in PATH (needed by " + tool.Purpose + ")"}
	}

	info := ToolInfo{Name: tool.Name, Path: path, Found: true}
	res, err := exec.Check(ctx, r, path, tool.VersionArgs, exec.RunOpts{})
	if err != nil {
		info.Message = "failed to get version: " + err.Error()
		return info
	}

	version, err := extractVersion(res.Stdout + res.Stderr)
	if err != nil {
		info.Message = err.Error()
		return info
	}
	info.Version = version
	return info
}

// DetectTools runs DetectTool for every entry of Tools.
func DetectTools(ctx context.Context, r exec.CommandRunner) []ToolInfo {
	out := make([]ToolInfo, 0, len(Tools))
	for _, t := range Tools {
		out = append(out, DetectTool(ctx, r, t))
	}
	return out
}

func extractVersion(output string) (string, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	match := toolVersionRegex.FindString(first)
	if match == "" {
		match = toolVersionRegex.FindString(output)
	}
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return strings.TrimPrefix(match, "v"), nil
}

type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + strings.TrimSpace(e.output)
}

// String renders the tool line of `buildben version`.
func (t ToolInfo) String() string {
	switch {
	case !t.Found:
		return fmt.Sprintf("  %-12s %s", t.Name+":", t.Message)
	case t.Version == "":
		return fmt.Sprintf("  %-12s %s (%s)", t.Name+":", t.Path, t.Message)
	default:
		return fmt.Sprintf("  %-12s %s (%s)", t.Name+":", t.Version, t.Path)
	}
}
