package dsl

import (
	"fmt"

	"github.com/aretw0/arbor/internal/validator"
	"github.com/aretw0/arbor/pkg/domain"
)

// New starts a tree whose root is identified by domain.RootID.
func New(rootLabel string) *NodeBuilder {
	return newNode(rootLabel).ID(domain.RootID)
}

// Build assembles the subtree and validates it.
func (n *NodeBuilder) Build() (domain.Node, error) {
	root := n.Node()
	if err := validator.ValidateTree(root); err != nil {
		return domain.Node{}, fmt.Errorf("invalid tree: %w", err)
	}
	return root, nil
}

// MustBuild is like Build but panics on an invalid tree.
func (n *NodeBuilder) MustBuild() domain.Node {
	root, err := n.Build()
	if err != nil {
		panic(err)
	}
	return root
}
