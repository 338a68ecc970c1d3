package output

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentPipe = "│   "
	indentNone = "    "

	// descColumn is where descriptions start when the name leaves room.
	descColumn = 40
)

type fileNode struct {
	desc     string
	dir      bool
	children map[string]*fileNode
}

// insert adds the slash-separated path below n, creating the directories
// on the way. A trailing slash marks the last element as a directory.
func (n *fileNode) insert(path, desc string) {
	dir := strings.HasSuffix(path, "/")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	cur := n
	for i, part := range parts {
		next, ok := cur.children[part]
		if !ok {
			next = &fileNode{children: map[string]*fileNode{}}
			cur.children[part] = next
		}
		if i < len(parts)-1 || dir {
			next.dir = true
		}
		cur = next
	}
	cur.desc = desc
}

// names lists the children with directories before files, each group sorted.
func (n *fileNode) names() []string {
	out := make([]string, 0, len(n.children))
	for name := range n.children {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := n.children[out[i]], n.children[out[j]]
		if a.dir != b.dir {
			return a.dir
		}
		return out[i] < out[j]
	})
	return out
}

func (n *fileNode) write(sb *strings.Builder, indent string) {
	names := n.names()
	for i, name := range names {
		child := n.children[name]
		last := i == len(names)-1

		branch, nextIndent := branchMid, indent+indentPipe
		if last {
			branch, nextIndent = branchEnd, indent+indentNone
		}
		if child.dir {
			name += "/"
		}

		line := indent + branch + name
		if child.desc != "" {
			gap := max(descColumn-lipgloss.Width(line), 2)
			line += strings.Repeat(" ", gap) + StyleDim.Render(child.desc)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')

		child.write(sb, nextIndent)
	}
}

// RenderFileTree draws files (relative path to description) below a bold
// rootName/ heading. Paths may use either separator; one ending in a
// separator is drawn as a directory. Descriptions line up at a fixed column.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &fileNode{dir: true, children: map[string]*fileNode{}}
	for path, desc := range files {
		root.insert(filepath.ToSlash(path), desc)
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(rootName + "/"))
	sb.WriteByte('\n')
	root.write(&sb, "")
	return sb.String()
}
