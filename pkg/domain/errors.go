package domain

import "errors"

// ErrNodeNotFound is returned by operations that require an existing node.
// Lookups such as Find report absence with a boolean instead.
var ErrNodeNotFound = errors.New("node not found")

// ErrRootRemoval is returned when a caller attempts to detach the root node.
var ErrRootRemoval = errors.New("root node cannot be removed")
