package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument matches every decode failure: invalid syntax,
	// missing required fields, or fields of the wrong type.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrIO matches every failure to read or write a document file.
	ErrIO = errors.New("document i/o failure")
)

// MalformedError describes why a document could not be decoded.
type MalformedError struct {
	File string // Source file, if the document was loaded from disk
	Path string // JSON path of the offending node, e.g. "$.branches[1]"
	Err  error  // Decoder error or *schema.AggregateError
}

func (e *MalformedError) Error() string {
	msg := "malformed document"
	if e.File != "" {
		msg += " " + e.File
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformedDocument }

// IOError wraps a file-system failure while loading or saving a document.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s document %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
