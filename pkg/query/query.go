package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrInvalidQuery matches every compile failure.
var ErrInvalidQuery = errors.New("invalid query")

// Env is the view of a node an expression is evaluated against.
type Env struct {
	ID       string `expr:"id"`
	Label    string `expr:"label"`
	Question string `expr:"question"`
	Result   string `expr:"result"`
	Note     string `expr:"note"`
	Tag      string `expr:"tag"`
	Leaf     bool   `expr:"leaf"`
	Depth    int    `expr:"depth"`
	Branches int    `expr:"branches"`
	Path     string `expr:"path"` // Labels from the root joined by "/"
}

// Match is a node selected by a query.
type Match struct {
	Node  domain.Node
	Depth int
	Path  []string
}

// Query is a compiled expression, safe for concurrent use.
type Query struct {
	source  string
	program *vm.Program
}

// Compile parses src. An empty expression matches every node.
func Compile(src string) (*Query, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		src = "true"
	}
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return &Query{source: src, program: program}, nil
}

// String returns the expression source.
func (q *Query) String() string { return q.source }

// Matches evaluates the query against a single node.
func (q *Query) Matches(n domain.Node, depth int, path []string) (bool, error) {
	out, err := expr.Run(q.program, envFor(n, depth, path))
	if err != nil {
		return false, fmt.Errorf("evaluating %q on node %s: %w", q.source, n.ID, err)
	}
	return out.(bool), nil
}

// Select returns every matching node in pre-order.
func (q *Query) Select(root domain.Node) ([]Match, error) {
	var out []Match
	err := domain.Walk(root, func(n domain.Node, depth int, path []string) error {
		ok, err := q.Matches(n, depth, path)
		if err != nil {
			return err
		}
		if ok {
			out = append(out, Match{Node: n, Depth: depth, Path: append([]string(nil), path...)})
		}
		return nil
	})
	return out, err
}

// Select compiles src and runs it against root.
func Select(root domain.Node, src string) ([]Match, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}

func envFor(n domain.Node, depth int, path []string) Env {
	return Env{
		ID:       n.ID,
		Label:    n.Label,
		Question: domain.Value(n.Question),
		Result:   domain.Value(n.Result),
		Note:     domain.Value(n.Note),
		Tag:      domain.Value(n.Tag),
		Leaf:     n.IsLeaf(),
		Depth:    depth,
		Branches: len(n.Branches),
		Path:     strings.Join(path, "/"),
	}
}
