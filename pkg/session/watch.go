package session

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay lets editors finish writing before the file is read back.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the document whenever its file changes on disk, until ctx is
// done. Changes are ignored while the document has unsaved edits, and a file
// that fails to decode leaves the document as it is. onReload, if not nil, is
// called with each reloaded tree.
func (e *Editor) Watch(ctx context.Context, onReload func(domain.Node)) error {
	path := e.Path()
	if path == "" {
		return ErrNoPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: atomic saves replace the file rather than write to it.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	e.logger.Info("Watching document", "path", abs)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(reloadDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("Watcher error", "err", err)
		case <-pending:
			pending = nil
			if root, ok := e.reload(path); ok && onReload != nil {
				onReload(root)
			}
		}
	}
}

// reload replaces a clean document with the file's current content.
func (e *Editor) reload(path string) (domain.Node, bool) {
	root, err := codec.LoadFile(path)
	if err != nil {
		e.logger.Warn("Reload skipped", "path", path, "err", err)
		return domain.Node{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dirty || e.path != path {
		e.logger.Info("Reload skipped: document has unsaved changes", "path", path)
		return domain.Node{}, false
	}
	if domain.DeepEqual(e.root, root) {
		return domain.Node{}, false
	}
	e.root = root
	e.logger.Info("Document reloaded", "path", path)
	return domain.Clone(root), true
}
