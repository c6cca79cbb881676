package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Tree returns a rapid generator of well-formed trees: unique IDs, a root
// identified by domain.RootID, and every node either a leaf or branching.
func Tree() *rapid.Generator[domain.Node] {
	return rapid.Custom(func(t *rapid.T) domain.Node {
		next := 0
		var gen func(depth int) domain.Node
		gen = func(depth int) domain.Node {
			next++
			n := domain.Node{
				ID:    fmt.Sprintf("n%d", next),
				Label: rapid.String().Draw(t, "label"),
				Note:  optionalText(t, "note"),
				Tag:   optionalText(t, "tag"),
			}
			if depth < 3 && rapid.Bool().Draw(t, "branching") {
				n.Question = domain.Text(rapid.String().Draw(t, "question"))
				width := rapid.IntRange(1, 3).Draw(t, "width")
				for i := 0; i < width; i++ {
					n.Branches = append(n.Branches, gen(depth+1))
				}
			} else if rapid.Bool().Draw(t, "leaf") {
				n.Result = domain.Text(rapid.String().Draw(t, "result"))
			}
			return n
		}

		root := gen(0)
		root.ID = domain.RootID
		root.Label = ""
		return root
	})
}

func optionalText(t *rapid.T, label string) *string {
	if !rapid.Bool().Draw(t, label+"?") {
		return nil
	}
	return domain.Text(rapid.String().Draw(t, label))
}

// NodeIDs returns every ID in the tree in pre-order.
func NodeIDs(root domain.Node) []string {
	var ids []string
	_ = domain.Walk(root, func(n domain.Node, _ int, _ []string) error {
		ids = append(ids, n.ID)
		return nil
	})
	return ids
}

// WriteFile writes content into a fresh temporary directory and returns the path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write fixture")
	return path
}
