package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
)

// Editor is the open document: a tree, the file backing it and whether it
// has unsaved changes.
type Editor struct {
	mu    sync.RWMutex
	root  domain.Node
	path  string
	dirty bool

	rootLabel string
	logger    *slog.Logger
}

// Option configures the Editor.
type Option func(*Editor)

// WithLogger configures a logger for the Editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithRootLabel sets the label given to the root of new documents.
func WithRootLabel(label string) Option {
	return func(e *Editor) {
		e.rootLabel = label
	}
}

// NewEditor creates an Editor holding a fresh, unsaved document.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.root = domain.NewTree(e.rootLabel)
	return e
}

// New discards the current document and starts an empty one with no path.
func (e *Editor) New() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.root = domain.NewTree(e.rootLabel)
	e.path = ""
	e.dirty = false
	e.logger.Debug("New document")
}

// Open loads the document at path. On failure the current document is kept.
func (e *Editor) Open(path string) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		e.logger.Debug("Open failed", "path", path, "err", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.root = root
	e.path = path
	e.dirty = false
	e.logger.Info("Document opened", "path", path, "nodes", domain.Count(root))
	return nil
}

// Save writes the document to its current path.
func (e *Editor) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.path == "" {
		return ErrNoPath
	}
	return e.saveLocked(e.path)
}

// SaveAs writes the document to path, which becomes its current path.
// The path is only adopted when the write succeeds.
func (e *Editor) SaveAs(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.saveLocked(path)
}

func (e *Editor) saveLocked(path string) error {
	if err := codec.SaveFile(e.root, path); err != nil {
		return err
	}
	e.path = path
	e.dirty = false
	e.logger.Info("Document saved", "path", path)
	return nil
}

// Path returns the file backing the document, or "" if there is none.
func (e *Editor) Path() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.path
}

// Dirty reports whether the document has unsaved changes.
func (e *Editor) Dirty() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dirty
}

// Snapshot returns a deep copy of the current tree.
func (e *Editor) Snapshot() domain.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return domain.Clone(e.root)
}

// Find returns a copy of the node identified by id.
func (e *Editor) Find(id string) (domain.Node, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n, ok := domain.Find(e.root, id)
	if !ok {
		return domain.Node{}, false
	}
	return domain.Clone(n), true
}

// Replace swaps in a whole new tree and marks the document dirty.
func (e *Editor) Replace(root domain.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.root = domain.Clone(root)
	e.dirty = true
}

// Update applies fn to the node identified by id and writes the result back
// into the tree. The returned node keeps its ID whatever fn does to it.
func (e *Editor) Update(id string, fn func(domain.Node) (domain.Node, error)) (domain.Node, error) {
	var out domain.Node
	err := e.withTree(func(root domain.Node) (domain.Node, error) {
		n, ok := domain.Find(root, id)
		if !ok {
			return root, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
		}
		updated, err := fn(domain.Clone(n))
		if err != nil {
			return root, err
		}
		updated.ID = id
		out = domain.Clone(updated)
		return domain.Replace(root, updated), nil
	})
	return out, err
}

// AddBranch appends a new child to the node identified by id and returns the child.
func (e *Editor) AddBranch(id string) (domain.Node, error) {
	parent, err := e.Update(id, func(n domain.Node) (domain.Node, error) {
		return domain.AddBranch(n), nil
	})
	if err != nil {
		return domain.Node{}, err
	}
	child := parent.Branches[len(parent.Branches)-1]
	e.logger.Debug("Branch added", "parent", id, "child", child.ID, "label", child.Label)
	return child, nil
}

// RemoveBranch removes the children of parentID labelled label.
func (e *Editor) RemoveBranch(parentID, label string) error {
	_, err := e.Update(parentID, func(n domain.Node) (domain.Node, error) {
		return domain.RemoveBranch(n, label), nil
	})
	return err
}

// RemoveNode detaches the subtree identified by id.
func (e *Editor) RemoveNode(id string) error {
	return e.withTree(func(root domain.Node) (domain.Node, error) {
		return domain.RemoveNode(root, id)
	})
}

// SetResult turns the node identified by id into a leaf.
func (e *Editor) SetResult(id, result string) (domain.Node, error) {
	return e.Update(id, func(n domain.Node) (domain.Node, error) {
		return domain.SetResult(n, result), nil
	})
}

// Patch is a partial update of a node's text fields. Nil fields are left as
// they are; a pointer to "" clears an optional field.
type Patch struct {
	Label       *string `json:"label,omitempty"`
	Question    *string `json:"question,omitempty"`
	Result      *string `json:"result,omitempty"`
	Note        *string `json:"note,omitempty"`
	Tag         *string `json:"tag,omitempty"`
	ClearResult bool    `json:"clearResult,omitempty"`
}

// Apply writes p onto the node identified by id.
// Setting a result drops the node's branches.
func (e *Editor) Apply(id string, p Patch) (domain.Node, error) {
	return e.Update(id, func(n domain.Node) (domain.Node, error) {
		return p.apply(n), nil
	})
}

func (p Patch) apply(n domain.Node) domain.Node {
	if p.Label != nil {
		n = domain.Relabel(n, *p.Label)
	}
	if p.Question != nil {
		n = domain.SetQuestion(n, *p.Question)
	}
	if p.Note != nil {
		n = domain.SetNote(n, *p.Note)
	}
	if p.Tag != nil {
		n = domain.SetTag(n, *p.Tag)
	}
	if p.ClearResult {
		n = domain.ClearResult(n)
	}
	if p.Result != nil {
		n = domain.SetResult(n, *p.Result)
	}
	return n
}

// withTree runs fn with the current tree under the write lock and stores
// what it returns. The document is only marked dirty when fn succeeds.
func (e *Editor) withTree(fn func(domain.Node) (domain.Node, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := fn(e.root)
	if err != nil {
		return err
	}
	e.root = next
	e.dirty = true
	return nil
}
