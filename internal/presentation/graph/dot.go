package graph

import (
	"fmt"
	"strconv"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/awalterschulze/gographviz"
)

const dotGraphName = "arbor"

// GenerateDOT produces a Graphviz digraph of the tree. Node names are the
// quoted node IDs; edges are labelled with the branch label.
func GenerateDOT(root domain.Node, overlay *Overlay) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.AddAttr(dotGraphName, "rankdir", "TB"); err != nil {
		return "", err
	}

	highlighted := make(map[string]bool)
	var current string
	if overlay != nil {
		for _, id := range overlay.Highlighted {
			highlighted[id] = true
		}
		current = overlay.CurrentNode
	}

	err := domain.Walk(root, func(node domain.Node, depth int, _ []string) error {
		attrs := map[string]string{
			"label": strconv.Quote(node.DisplayText()),
			"shape": dotShape(node, depth),
		}
		switch {
		case node.ID == current:
			attrs["style"] = "filled"
			attrs["fillcolor"] = strconv.Quote("#ffeb3b")
		case highlighted[node.ID]:
			attrs["style"] = "filled"
			attrs["fillcolor"] = strconv.Quote("#e1f5fe")
		}
		if err := g.AddNode(dotGraphName, strconv.Quote(node.ID), attrs); err != nil {
			return fmt.Errorf("node %s: %w", node.ID, err)
		}

		for _, c := range node.Branches {
			edge := map[string]string{"label": strconv.Quote(c.Label)}
			if err := g.AddEdge(strconv.Quote(node.ID), strconv.Quote(c.ID), true, edge); err != nil {
				return fmt.Errorf("edge %s -> %s: %w", node.ID, c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

func dotShape(n domain.Node, depth int) string {
	switch {
	case depth == 0:
		return "doublecircle"
	case n.IsLeaf():
		return "box"
	case n.IsBranching():
		return "diamond"
	default:
		return "ellipse"
	}
}

// Format names an export format for graphs.
type Format string

const (
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
)

// Render dispatches to the generator for format.
func Render(root domain.Node, format Format, overlay *Overlay) (string, error) {
	switch format {
	case FormatMermaid, "":
		return GenerateMermaid(root, overlay), nil
	case FormatDOT:
		return GenerateDOT(root, overlay)
	default:
		return "", fmt.Errorf("unknown graph format %q (want mermaid or dot)", format)
	}
}
