package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// Severity ranks an Issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Issue is a single problem found in a tree.
type Issue struct {
	NodeID   string
	Path     string // Labels from the root joined by " > "; empty for the root
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	where := i.NodeID
	if i.Path != "" {
		where = fmt.Sprintf("%s (%s)", i.NodeID, i.Path)
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, where, i.Message)
}

// Error is returned by ValidateTree. It carries every issue found, warnings included.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		lines = append(lines, i.String())
	}
	return fmt.Sprintf("found %d issues:\n- %s", len(e.Issues), strings.Join(lines, "\n- "))
}

// Option configures a validation run.
type Option func(*options)

type options struct {
	strict bool
}

// Strict additionally requires the root to be identified by domain.RootID.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// Check crawls the tree breadth-first and returns every issue found.
func Check(root domain.Node, opts ...Option) []Issue {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	type item struct {
		node domain.Node
		path []string
	}

	var issues []Issue
	report := func(it item, sev Severity, format string, args ...any) {
		issues = append(issues, Issue{
			NodeID:   it.node.ID,
			Path:     strings.Join(it.path, " > "),
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if o.strict && root.ID != domain.RootID {
		report(item{node: root}, SeverityError, "root id must be %q", domain.RootID)
	}

	seen := make(map[string]bool)
	queue := []item{{node: root}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		n := current.node

		if n.ID == "" {
			report(current, SeverityError, "empty id")
		} else if seen[n.ID] {
			report(current, SeverityError, "duplicate id %q", n.ID)
		}
		seen[n.ID] = true

		if n.IsLeaf() && n.IsBranching() {
			report(current, SeverityError, "node has both a result and %d branches", len(n.Branches))
		}
		if n.IsBranching() && domain.Value(n.Question) == "" {
			report(current, SeverityWarning, "branching node has no question")
		}

		labels := make(map[string]bool, len(n.Branches))
		for _, c := range n.Branches {
			if labels[c.Label] {
				report(current, SeverityError, "duplicate branch label %q", c.Label)
			}
			labels[c.Label] = true

			path := append(append([]string(nil), current.path...), c.Label)
			queue = append(queue, item{node: c, path: path})
		}
	}

	return issues
}

// ValidateTree checks a whole tree for well-formedness.
// It returns an *Error when at least one error-level issue is found;
// warnings alone do not fail validation.
func ValidateTree(root domain.Node, opts ...Option) error {
	issues := Check(root, opts...)
	for _, i := range issues {
		if i.Severity == SeverityError {
			return &Error{Issues: issues}
		}
	}
	return nil
}
