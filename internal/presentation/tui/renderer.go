package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// DetailMarkdown describes a single node as markdown: its text fields and
// the branches it offers.
func DetailMarkdown(n domain.Node) string {
	var sb strings.Builder

	title := n.Label
	if title == "" {
		title = n.DisplayText()
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "`%s`\n\n", n.ID)

	if n.Question != nil {
		fmt.Fprintf(&sb, "**Question:** %s\n\n", *n.Question)
	}
	if n.Result != nil {
		fmt.Fprintf(&sb, "**Result:** %s\n\n", *n.Result)
	}
	if n.Note != nil {
		fmt.Fprintf(&sb, "> %s\n\n", *n.Note)
	}
	if n.Tag != nil {
		fmt.Fprintf(&sb, "Tag: `%s`\n\n", *n.Tag)
	}

	if n.IsBranching() {
		sb.WriteString("## Branches\n\n")
		for _, c := range n.Branches {
			kind := "question"
			if c.IsLeaf() {
				kind = "result"
			}
			fmt.Fprintf(&sb, "- **%s** → %s _(%s)_\n", c.Label, c.DisplayText(), kind)
		}
	}

	return sb.String()
}

// RenderDetail renders DetailMarkdown with render, falling back to the raw
// markdown if rendering fails.
func RenderDetail(n domain.Node, render func(string) (string, error)) string {
	md := DetailMarkdown(n)
	if render == nil {
		return md
	}
	out, err := render(md)
	if err != nil {
		return md
	}
	return out
}
