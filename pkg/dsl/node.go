package dsl

import "github.com/aretw0/arbor/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node and its branches.
type NodeBuilder struct {
	node     domain.Node
	children []*NodeBuilder
}

func newNode(label string) *NodeBuilder {
	return &NodeBuilder{node: domain.Node{ID: domain.NewID(), Label: label}}
}

// ID replaces the generated identifier.
func (n *NodeBuilder) ID(id string) *NodeBuilder {
	n.node.ID = id
	return n
}

// Ask sets the question shown at this node.
func (n *NodeBuilder) Ask(question string) *NodeBuilder {
	n.node.Question = domain.Text(question)
	return n
}

// Note attaches a free-form note.
func (n *NodeBuilder) Note(note string) *NodeBuilder {
	n.node.Note = domain.Text(note)
	return n
}

// Tag attaches a free-form tag.
func (n *NodeBuilder) Tag(tag string) *NodeBuilder {
	n.node.Tag = domain.Text(tag)
	return n
}

// Result makes the node a leaf. Branches added so far are dropped.
func (n *NodeBuilder) Result(result string) *NodeBuilder {
	n.node.Result = domain.Text(result)
	n.children = nil
	return n
}

// Branch adds a child labelled label and configures it with fn.
// Adding a branch clears any result set on this node.
func (n *NodeBuilder) Branch(label string, fn func(*NodeBuilder)) *NodeBuilder {
	child := newNode(label)
	if fn != nil {
		fn(child)
	}
	n.node.Result = nil
	n.children = append(n.children, child)
	return n
}

// Leaf adds a child labelled label that carries result.
func (n *NodeBuilder) Leaf(label, result string) *NodeBuilder {
	return n.Branch(label, func(c *NodeBuilder) {
		c.Result(result)
	})
}

// Node assembles the subtree without validating it.
func (n *NodeBuilder) Node() domain.Node {
	out := n.node
	out.Branches = nil
	for _, c := range n.children {
		out.Branches = append(out.Branches, c.Node())
	}
	return out
}
