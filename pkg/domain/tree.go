package domain

import "fmt"

// Find searches the tree depth-first (self, then each child left to right)
// and returns the first node whose ID equals id.
func Find(root Node, id string) (Node, bool) {
	if root.ID == id {
		return root, true
	}
	for _, child := range root.Branches {
		if found, ok := Find(child, id); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindParent returns the node that holds the node identified by id as a direct child.
// The root has no parent.
func FindParent(root Node, id string) (Node, bool) {
	for _, child := range root.Branches {
		if child.ID == id {
			return root, true
		}
		if parent, ok := FindParent(child, id); ok {
			return parent, true
		}
	}
	return Node{}, false
}

// Replace returns a tree identical to root except that the node whose ID
// matches updated.ID is replaced by updated, subtree included.
// When no node matches, root is returned unchanged.
func Replace(root Node, updated Node) Node {
	updated.Branches = normalizeBranches(updated.Branches)
	out, _ := replace(root, updated)
	return out
}

func replace(n Node, updated Node) (Node, bool) {
	if n.ID == updated.ID {
		return updated, true
	}
	for i, child := range n.Branches {
		next, ok := replace(child, updated)
		if !ok {
			continue
		}
		branches := make([]Node, len(n.Branches))
		copy(branches, n.Branches)
		branches[i] = next
		n.Branches = branches
		return n, true
	}
	return n, false
}

// AddBranch appends a new child to n with a generated ID, the first unused
// label among "New Branch", "New Branch 2", "New Branch 3", ... and the
// placeholder question. Any result on n is cleared so that n becomes branching.
func AddBranch(n Node) Node {
	return AddBranchWithID(n, NewID())
}

// AddBranchWithID behaves like AddBranch but uses the given ID for the new child.
func AddBranchWithID(n Node, id string) Node {
	child := Node{
		ID:       id,
		Label:    nextBranchLabel(n.Branches),
		Question: Text(PlaceholderQuestion),
	}
	branches := make([]Node, len(n.Branches), len(n.Branches)+1)
	copy(branches, n.Branches)
	n.Branches = append(branches, child)
	n.Result = nil
	return n
}

func nextBranchLabel(branches []Node) string {
	used := make(map[string]bool, len(branches))
	for _, b := range branches {
		used[b.Label] = true
	}
	label := NewBranchLabel
	for i := 2; used[label]; i++ {
		label = fmt.Sprintf("%s %d", NewBranchLabel, i)
	}
	return label
}

// RemoveBranch removes every direct child of n labelled label.
// If no children remain, Branches becomes nil.
func RemoveBranch(n Node, label string) Node {
	return removeWhere(n, func(c Node) bool { return c.Label == label })
}

// RemoveBranchByID removes the direct child of n identified by id.
// If no children remain, Branches becomes nil.
func RemoveBranchByID(n Node, id string) Node {
	return removeWhere(n, func(c Node) bool { return c.ID == id })
}

func removeWhere(n Node, match func(Node) bool) Node {
	var kept []Node
	for _, c := range n.Branches {
		if !match(c) {
			kept = append(kept, c)
		}
	}
	n.Branches = normalizeBranches(kept)
	return n
}

// RemoveNode detaches the subtree identified by id from its parent.
func RemoveNode(root Node, id string) (Node, error) {
	if root.ID == id {
		return root, ErrRootRemoval
	}
	parent, ok := FindParent(root, id)
	if !ok {
		return root, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return Replace(root, RemoveBranchByID(parent, id)), nil
}

// SetResult turns n into a leaf carrying result. Its branches are dropped.
func SetResult(n Node, result string) Node {
	n.Result = Text(result)
	n.Branches = nil
	return n
}

// ClearResult removes the result from n.
func ClearResult(n Node) Node {
	n.Result = nil
	return n
}

// SetQuestion sets the prompt of n. An empty question clears the field.
func SetQuestion(n Node, question string) Node {
	n.Question = optional(question)
	return n
}

// SetNote sets the note of n. An empty note clears the field.
func SetNote(n Node, note string) Node {
	n.Note = optional(note)
	return n
}

// SetTag sets the tag of n. An empty tag clears the field.
func SetTag(n Node, tag string) Node {
	n.Tag = optional(tag)
	return n
}

// Relabel changes the answer text of n.
func Relabel(n Node, label string) Node {
	n.Label = label
	return n
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return Text(s)
}

// Clone returns a deep copy of n that shares no memory with it.
func Clone(n Node) Node {
	out := n
	out.Note = cloneText(n.Note)
	out.Question = cloneText(n.Question)
	out.Result = cloneText(n.Result)
	out.Tag = cloneText(n.Tag)
	if len(n.Branches) > 0 {
		out.Branches = make([]Node, len(n.Branches))
		for i, c := range n.Branches {
			out.Branches[i] = Clone(c)
		}
	} else {
		out.Branches = nil
	}
	return out
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	return Text(*s)
}
