package arbor

import (
	_ "embed"

	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/session"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// Tree is a decision tree, addressed by its root node.
type Tree = domain.Node

// New returns an editor holding an empty, unsaved document.
func New(opts ...session.Option) *session.Editor {
	return session.NewEditor(opts...)
}

// Open returns an editor holding the document stored at path.
func Open(path string, opts ...session.Option) (*session.Editor, error) {
	e := session.NewEditor(opts...)
	if err := e.Open(path); err != nil {
		return nil, err
	}
	return e, nil
}

// Load reads the document at path without opening an editor.
func Load(path string) (Tree, error) {
	return codec.LoadFile(path)
}

// Save writes root to path atomically.
func Save(root Tree, path string) error {
	return codec.SaveFile(root, path)
}
