// Package schema provides field-level validation for decoded JSON objects.
//
// It defines a small type system (string, object, arrays, optional fields and
// custom validators). Schemas map field names to types, and Validate reports
// every failing field at once. The codec uses it to check each node object of
// a document before binding it to domain.Node, so a malformed document yields
// field-level reasons instead of a bare decoder message.
//
// Basic usage:
//
//	node := schema.Schema{
//	    "id":       schema.String(),
//	    "label":    schema.String(),
//	    "question": schema.Optional(schema.String()),
//	    "branches": schema.Optional(schema.Slice(schema.Object())),
//	}
//
//	var raw map[string]any
//	_ = json.Unmarshal(data, &raw)
//
//	if err := schema.Validate(node, raw); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // Handle each failing field
//	    }
//	}
//
// This package has no dependencies beyond the Go standard library.
package schema
