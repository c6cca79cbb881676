package tui

import (
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	idStyle       = lipgloss.NewStyle().Faint(true)
	enumStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// OutlineOptions controls how Outline draws a tree.
type OutlineOptions struct {
	Colored bool // Colour questions and results differently
	ShowIDs bool
}

// Outline draws the tree as an indented sidebar, one line per node:
// "Label: display text". The root shows only its display text.
func Outline(root domain.Node, opts OutlineOptions) string {
	t := tree.Root(outlineItem(root, true, opts)).
		Enumerator(tree.RoundedEnumerator)
	if opts.Colored {
		t = t.EnumeratorStyle(enumStyle)
	}
	for _, c := range root.Branches {
		t = t.Child(outlineNode(c, opts))
	}
	return t.String()
}

func outlineNode(n domain.Node, opts OutlineOptions) any {
	item := outlineItem(n, false, opts)
	if !n.IsBranching() {
		return item
	}

	t := tree.Root(item).Enumerator(tree.RoundedEnumerator)
	if opts.Colored {
		t = t.EnumeratorStyle(enumStyle)
	}
	for _, c := range n.Branches {
		t = t.Child(outlineNode(c, opts))
	}
	return t
}

func outlineItem(n domain.Node, isRoot bool, opts OutlineOptions) string {
	text := n.DisplayText()
	if opts.Colored {
		if n.IsLeaf() {
			text = resultStyle.Render(text)
		} else {
			text = questionStyle.Render(text)
		}
	}

	item := text
	if !isRoot {
		item = n.Label + ": " + text
	}
	if opts.ShowIDs {
		id := "[" + n.ID + "]"
		if opts.Colored {
			id = idStyle.Render(id)
		}
		item += " " + id
	}
	return item
}
