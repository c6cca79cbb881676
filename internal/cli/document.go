package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aretw0/arbor/internal/fsutil"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/internal/validator"
	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/query"
	"github.com/aretw0/arbor/pkg/session"
	"github.com/goccy/go-json"
)

// ErrExists is returned when creating a document over an existing file without force.
var ErrExists = errors.New("file already exists")

// Create writes a new document to path: an empty tree, or the colour
// questionnaire when sample is set.
func (a *App) Create(path string, sample, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	ed := a.newEditor()
	if sample {
		ed.Replace(domain.SampleTree())
	}
	if err := ed.SaveAs(path); err != nil {
		return err
	}

	a.Logger.Info("Document created", "path", path, "sample", sample)
	printSystemMessage(a.Out, "Created %s", path)
	return nil
}

// ShowOptions controls Show.
type ShowOptions struct {
	NodeID  string // Empty shows the outline of the whole tree
	ShowIDs bool
}

// Show prints the outline of the document, or the detail of a single node.
func (a *App) Show(path string, opts ShowOptions) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		return err
	}

	if opts.NodeID == "" {
		fmt.Fprintln(a.Out, tui.Outline(root, tui.OutlineOptions{
			Colored: a.Settings.SidebarColoredText,
			ShowIDs: opts.ShowIDs,
		}))
		return nil
	}

	n, ok := domain.Find(root, opts.NodeID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, opts.NodeID)
	}
	fmt.Fprint(a.Out, tui.RenderDetail(n, a.render))
	return nil
}

// PrintNode writes the node identified by id as JSON.
func (a *App) PrintNode(path, id string) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		return err
	}
	n, ok := domain.Find(root, id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return codec.Encode(a.Out, n)
}

// AddBranch appends a new child to the node identified by parentID and saves.
func (a *App) AddBranch(path, parentID string) error {
	return a.edit(path, func(ed *session.Editor) error {
		child, err := ed.AddBranch(parentID)
		if err != nil {
			return err
		}
		printSystemMessage(a.Out, "Added branch %q (%s) under %s", child.Label, child.ID, parentID)
		return nil
	})
}

// RemoveBranch removes the children of parentID labelled label and saves.
func (a *App) RemoveBranch(ctx context.Context, path, parentID, label string, assumeYes bool) error {
	return a.edit(path, func(ed *session.Editor) error {
		parent, ok := ed.Find(parentID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, parentID)
		}
		// Every child carrying the label goes, so count all of them.
		matched, nodes := 0, 0
		for _, c := range parent.Branches {
			if c.Label == label {
				matched++
				nodes += domain.Count(c)
			}
		}
		if matched == 0 {
			return fmt.Errorf("node %s has no branch labelled %q (branches: %s)", parentID, label, strings.Join(parent.Labels(), ", "))
		}

		desc := fmt.Sprintf("%q and its %d descendants will be deleted.", label, nodes-1)
		if matched > 1 {
			desc = fmt.Sprintf("%d branches labelled %q and their %d descendants will be deleted.", matched, label, nodes-matched)
		}
		if err := a.confirmDestructive(ctx, assumeYes, "Remove branch?", desc); err != nil {
			return err
		}
		if err := ed.RemoveBranch(parentID, label); err != nil {
			return err
		}
		printSystemMessage(a.Out, "Removed branch %q from %s", label, parentID)
		return nil
	})
}

// RemoveNode detaches the subtree identified by id and saves.
func (a *App) RemoveNode(ctx context.Context, path, id string, assumeYes bool) error {
	return a.edit(path, func(ed *session.Editor) error {
		n, ok := ed.Find(id)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
		}
		if id == ed.Snapshot().ID {
			return domain.ErrRootRemoval
		}

		desc := fmt.Sprintf("%q and its %d descendants will be deleted.", n.DisplayText(), domain.Count(n)-1)
		if err := a.confirmDestructive(ctx, assumeYes, "Remove node?", desc); err != nil {
			return err
		}
		if err := ed.RemoveNode(id); err != nil {
			return err
		}
		printSystemMessage(a.Out, "Removed %s", id)
		return nil
	})
}

// Set applies p to the node identified by id and saves.
func (a *App) Set(path, id string, p session.Patch) error {
	return a.edit(path, func(ed *session.Editor) error {
		n, err := ed.Apply(id, p)
		if err != nil {
			return err
		}
		printSystemMessage(a.Out, "Updated %s: %s", id, n.DisplayText())
		return nil
	})
}

// edit opens path, runs fn and saves the document if fn succeeded.
func (a *App) edit(path string, fn func(*session.Editor) error) error {
	ed, err := a.openEditor(path)
	if err != nil {
		return err
	}
	if err := fn(ed); err != nil {
		return err
	}
	if !ed.Dirty() {
		return nil
	}
	return ed.Save()
}

// Validate reports every issue found in the document. It fails when an
// error-level issue is found.
func (a *App) Validate(path string, strict bool) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		return err
	}

	var opts []validator.Option
	if strict {
		opts = append(opts, validator.Strict())
	}
	issues := validator.Check(root, opts...)
	for _, i := range issues {
		fmt.Fprintln(a.Out, i.String())
	}

	if err := validator.ValidateTree(root, opts...); err != nil {
		return err
	}
	printSystemMessage(a.Out, "%s is valid (%d nodes, %d leaves, depth %d)", path, domain.Count(root), len(domain.Leaves(root)), domain.Depth(root))
	return nil
}

type queryRow struct {
	ID    string `json:"id"`
	Depth int    `json:"depth"`
	Path  string `json:"path"`
	Text  string `json:"text"`
}

// Query prints the nodes matching expr, one per line, or as a JSON array.
func (a *App) Query(path, expr string, asJSON bool) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		return err
	}
	matches, err := query.Select(root, expr)
	if err != nil {
		return err
	}

	rows := make([]queryRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, queryRow{ID: m.Node.ID, Depth: m.Depth, Path: strings.Join(m.Path, "/"), Text: m.Node.DisplayText()})
	}

	if asJSON {
		enc := json.NewEncoder(a.Out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, r := range rows {
		fmt.Fprintf(a.Out, "%s\t/%s\t%s\n", r.ID, r.Path, r.Text)
	}
	return nil
}

// Graph prints the document as a diagram. Nodes matching highlight, when
// given, are emphasised, and current marks the node being worked on.
func (a *App) Graph(path string, format graph.Format, highlight, current string) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		return err
	}

	var overlay *graph.Overlay
	if highlight != "" || current != "" {
		overlay = &graph.Overlay{CurrentNode: current}
	}
	if current != "" {
		if _, ok := domain.Find(root, current); !ok {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, current)
		}
	}
	if highlight != "" {
		matches, err := query.Select(root, highlight)
		if err != nil {
			return err
		}
		for _, m := range matches {
			overlay.Highlighted = append(overlay.Highlighted, m.Node.ID)
		}
	}

	out, err := graph.Render(root, format, overlay)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, out)
	return nil
}

// Export converts the document to format and writes it to target, or to
// the output when target is empty.
func (a *App) Export(path string, format codec.Format, target string) error {
	root, err := codec.LoadFile(path)
	if err != nil {
		return err
	}

	data, err := codec.MarshalFormat(root, format)
	if err != nil {
		return err
	}
	if target != "" {
		if err := fsutil.WriteFileAtomic(target, data, 0644); err != nil {
			return &codec.IOError{Op: "write", Path: target, Err: err}
		}
		printSystemMessage(a.Out, "Exported %s to %s", path, target)
		return nil
	}
	_, err = a.Out.Write(data)
	return err
}
