package domain

import "errors"

// SkipBranches can be returned by a WalkFunc to skip the children of the
// current node without stopping the walk.
var SkipBranches = errors.New("skip branches")

// WalkFunc is called for every node visited by Walk. Path holds the labels
// from the root's first child down to n; it is empty for the root and must not
// be retained.
type WalkFunc func(n Node, depth int, path []string) error

// Walk visits the tree in pre-order (self, then children left to right).
// Any error other than SkipBranches stops the walk and is returned.
func Walk(root Node, fn WalkFunc) error {
	err := walk(root, 0, nil, fn)
	if errors.Is(err, SkipBranches) {
		return nil
	}
	return err
}

func walk(n Node, depth int, path []string, fn WalkFunc) error {
	if err := fn(n, depth, path); err != nil {
		return err
	}
	for _, c := range n.Branches {
		err := walk(c, depth+1, append(path, c.Label), fn)
		if err != nil && !errors.Is(err, SkipBranches) {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the tree.
func Count(root Node) int {
	total := 1
	for _, c := range root.Branches {
		total += Count(c)
	}
	return total
}

// Leaves returns every leaf of the tree in pre-order.
func Leaves(root Node) []Node {
	var out []Node
	_ = Walk(root, func(n Node, _ int, _ []string) error {
		if n.IsLeaf() {
			out = append(out, n)
		}
		return nil
	})
	return out
}

// Depth returns the number of edges on the longest root-to-node path.
func Depth(root Node) int {
	max := 0
	for _, c := range root.Branches {
		if d := Depth(c) + 1; d > max {
			max = d
		}
	}
	return max
}
