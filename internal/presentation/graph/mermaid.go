package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// Overlay contains state to highlight on the graph.
type Overlay struct {
	Highlighted []string // e.g. nodes matched by a query
	CurrentNode string   // the node being worked on, drawn on top of highlights
}

// GenerateMermaid produces a Mermaid flowchart of the tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Question: [/Parallelogram/]
// - Leaf: ([Stadium])
// - Default: [Rectangle]
// Edges carry the branch label. Overlay styles are applied when provided.
//
// Mermaid identifiers are n0, n1, ... in pre-order. Node IDs never appear
// as identifiers, so distinct IDs always get distinct shapes.
func GenerateMermaid(root domain.Node, overlay *Overlay) string {
	m := &mermaidWriter{ids: make(map[string][]string)}
	m.sb.WriteString("graph TD\n")
	m.node(root, 0)

	if overlay != nil {
		m.sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on light fills under both themes.
		m.sb.WriteString("    classDef highlighted fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		m.sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Highlighted {
			if seen[id] {
				continue
			}
			seen[id] = true
			for _, ref := range m.ids[id] {
				fmt.Fprintf(&m.sb, "    class %s highlighted;\n", ref)
			}
		}

		if overlay.CurrentNode != "" {
			for _, ref := range m.ids[overlay.CurrentNode] {
				fmt.Fprintf(&m.sb, "    class %s current;\n", ref)
			}
		}
	}

	return m.sb.String()
}

type mermaidWriter struct {
	sb   strings.Builder
	next int
	// ids maps a node ID to its Mermaid identifiers. Malformed trees may
	// repeat an ID, so there can be more than one.
	ids map[string][]string
}

// node writes n and its subtree and returns n's Mermaid identifier.
func (m *mermaidWriter) node(n domain.Node, depth int) string {
	ref := "n" + strconv.Itoa(m.next)
	m.next++
	m.ids[n.ID] = append(m.ids[n.ID], ref)

	opener, closer := "[", "]"
	switch {
	case depth == 0:
		opener, closer = "((", "))"
	case n.IsLeaf():
		opener, closer = "([", "])"
	case n.IsBranching():
		opener, closer = "[/", "/]"
	}
	fmt.Fprintf(&m.sb, "    %s%s\"%s\"%s\n", ref, opener, escapeMermaid(n.DisplayText()), closer)

	for _, c := range n.Branches {
		child := m.node(c, depth+1)
		arrow := "-->"
		if c.Label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeMermaid(c.Label))
		}
		fmt.Fprintf(&m.sb, "    %s %s %s\n", ref, arrow, child)
	}
	return ref
}

func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}
