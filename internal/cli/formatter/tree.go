package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is a single node in a tree display.
type TreeItem struct {
	Title  string
	Key    string // item key shown dimmed before the title; empty for branches
	Level  int
	IsLast bool
	Done   bool
	Leaf   bool
	Badge  string // pre-styled, right-aligned
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items as an indented tree using box-drawing connectors.
// Leaves get a ✔ or ○ check mark and badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	// open[l] reports whether the ancestor at level l has later siblings.
	var open []bool
	for idx, item := range items {
		for len(open) <= item.Level {
			open = append(open, false)
		}
		open[item.Level] = !item.IsLast

		var prefix strings.Builder
		if item.Level > 0 {
			for l := 1; l < item.Level; l++ {
				if open[l] {
					prefix.WriteString(treePipe)
				} else {
					prefix.WriteString(treeBlank)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		title := item.Title
		if item.Key != "" {
			title = StyleDim.Render(item.Key) + " " + title
		}
		if item.Leaf {
			if item.Done {
				title = StyleGreen.Render("✔ ") + title
			} else {
				title = StyleDim.Render("○ ") + title
			}
		} else {
			title = StyleBold.Render(title)
		}

		contents[idx] = prefix.String() + title
		widest = max(widest, lipgloss.Width(contents[idx]))
	}

	var b strings.Builder
	for idx, item := range items {
		b.WriteString(contents[idx])
		if item.Badge != "" {
			b.WriteString(strings.Repeat(" ", widest-lipgloss.Width(contents[idx])+2))
			b.WriteString(item.Badge)
		}
		b.WriteString("\n")
	}
	return b.String()
}
