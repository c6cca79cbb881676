package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/schema"
	"github.com/goccy/go-json"
)

// nodeSchema describes a single node object. Unknown fields are ignored.
var nodeSchema = schema.Schema{
	"id":       schema.String(),
	"label":    schema.String(),
	"question": schema.Optional(schema.String()),
	"result":   schema.Optional(schema.String()),
	"note":     schema.Optional(schema.String()),
	"tag":      schema.Optional(schema.String()),
	"branches": schema.Optional(schema.Slice(schema.Object())),
}

// Marshal encodes the tree as indented JSON with sorted keys and a trailing
// newline. Text is written as is: "<", ">" and "&" are not escaped.
func Marshal(root domain.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a JSON document into a tree.
// Any failure matches ErrMalformedDocument.
func Unmarshal(data []byte) (domain.Node, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Node{}, &MalformedError{Err: err}
	}
	if err := check("$", raw); err != nil {
		return domain.Node{}, err
	}

	var root domain.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return domain.Node{}, &MalformedError{Path: "$", Err: err}
	}
	return normalize(root), nil
}

// Encode writes the JSON encoding of root to w.
func Encode(w io.Writer, root domain.Node) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a whole JSON document from r.
func Decode(r io.Reader) (domain.Node, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return domain.Node{}, fmt.Errorf("failed to read document: %w", err)
	}
	return Unmarshal(buf.Bytes())
}

// check validates a decoded value as a node object, recursing into branches.
func check(path string, value any) error {
	if err := schema.Object().Validate(value); err != nil {
		return &MalformedError{Path: path, Err: err}
	}
	obj := value.(map[string]any)

	if err := schema.Validate(nodeSchema, obj); err != nil {
		return &MalformedError{Path: path, Err: err}
	}

	branches, _ := obj["branches"].([]any)
	for i, b := range branches {
		if err := check(fmt.Sprintf("%s.branches[%d]", path, i), b); err != nil {
			return err
		}
	}
	return nil
}

// normalize turns empty branch collections into nil throughout the tree.
func normalize(n domain.Node) domain.Node {
	if len(n.Branches) == 0 {
		n.Branches = nil
		return n
	}
	for i := range n.Branches {
		n.Branches[i] = normalize(n.Branches[i])
	}
	return n
}
