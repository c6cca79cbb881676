package domain

import "github.com/google/uuid"

// Node represents a point in a decision tree.
//
// A node is a leaf when Result is set and branching when Branches is non-empty.
// Question, Result, Note and Tag are optional: nil means absent, which is
// distinct from an empty string.
//
// Fields are declared in key order so that encoded objects have sorted keys.
type Node struct {
	// Branches are the answers offered by this node, in display order.
	// An empty collection is always normalized to nil.
	Branches []Node `json:"branches,omitempty" yaml:"branches,omitempty"`

	ID string `json:"id" yaml:"id"`

	// Label is the answer text the parent shows for this branch. Empty for the root.
	Label string `json:"label" yaml:"label"`

	Note     *string `json:"note,omitempty" yaml:"note,omitempty"`
	Question *string `json:"question,omitempty" yaml:"question,omitempty"`
	Result   *string `json:"result,omitempty" yaml:"result,omitempty"`
	Tag      *string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// NewID returns a fresh random node identifier.
func NewID() string {
	return uuid.NewString()
}

// NewTree creates a document with a single root node and no question or branches.
func NewTree(rootLabel string) Node {
	return Node{
		ID:    RootID,
		Label: rootLabel,
	}
}

// NewLeaf creates a leaf node with a generated ID.
func NewLeaf(label, result string) Node {
	return Node{
		ID:     NewID(),
		Label:  label,
		Result: Text(result),
	}
}

// NewQuestion creates a branching node with a generated ID.
func NewQuestion(label, question string, branches ...Node) Node {
	return Node{
		ID:       NewID(),
		Label:    label,
		Question: Text(question),
		Branches: normalizeBranches(branches),
	}
}

// Text returns a pointer to s, for populating optional fields.
func Text(s string) *string {
	return &s
}

// Value dereferences an optional field, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsLeaf reports whether the node carries a result.
func (n Node) IsLeaf() bool {
	return n.Result != nil
}

// IsBranching reports whether the node has at least one child.
func (n Node) IsBranching() bool {
	return len(n.Branches) > 0
}

// IsLeaf reports whether n carries a result.
func IsLeaf(n Node) bool {
	return n.IsLeaf()
}

// DisplayText is the short text used to list a node: its result when it is a
// leaf, otherwise its question.
func (n Node) DisplayText() string {
	if n.IsLeaf() {
		return *n.Result
	}
	if n.Question != nil && *n.Question != "" {
		return *n.Question
	}
	return UntitledText
}

// Child returns the first direct child with the given label.
func (n Node) Child(label string) (Node, bool) {
	for _, c := range n.Branches {
		if c.Label == label {
			return c, true
		}
	}
	return Node{}, false
}

// Labels returns the labels of the direct children, in order.
func (n Node) Labels() []string {
	labels := make([]string, 0, len(n.Branches))
	for _, c := range n.Branches {
		labels = append(labels, c.Label)
	}
	return labels
}

func normalizeBranches(branches []Node) []Node {
	if len(branches) == 0 {
		return nil
	}
	return branches
}
