// Package codec reads and writes decision tree documents.
//
// A document is one JSON object per node, children nested under "branches",
// written with sorted keys and two-space indentation. Absent optional fields
// are omitted rather than written as null. No schema version is read or
// written: the format is the current field set of domain.Node.
//
// Decoding checks every node object against a field schema before binding it,
// so failures report the JSON path and each offending field. All decode
// failures match ErrMalformedDocument; all file-system failures match ErrIO
// and unwrap to the underlying *fs.PathError.
//
// YAML is accepted as an alternate representation of the same structure for
// files ending in .yaml or .yml.
package codec
