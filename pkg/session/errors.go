package session

import "errors"

// ErrNoPath is returned by Save when the document has never been saved or opened.
var ErrNoPath = errors.New("document has no file path; use SaveAs")
