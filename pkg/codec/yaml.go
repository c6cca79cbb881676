package codec

import (
	"bytes"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the tree as YAML using the same field names as JSON.
func MarshalYAML(root domain.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML document into a tree, applying the same
// checks as Unmarshal.
func UnmarshalYAML(data []byte) (domain.Node, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Node{}, &MalformedError{Err: err}
	}
	if err := check("$", raw); err != nil {
		return domain.Node{}, err
	}

	// The checked value only holds strings, objects and arrays, so it
	// converts to JSON losslessly.
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return domain.Node{}, &MalformedError{Path: "$", Err: err}
	}
	return Unmarshal(asJSON)
}
