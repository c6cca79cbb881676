package domain

import "github.com/cespare/xxhash/v2"

// Two nodes are the same node when their IDs match; content is irrelevant to
// identity. Go cannot override ==, so these helpers stand in for it.

// EqualByID reports whether a and b denote the same node.
func EqualByID(a, b Node) bool {
	return a.ID == b.ID
}

// HashByID returns a hash of the node identity, consistent with EqualByID.
func (n Node) HashByID() uint64 {
	return xxhash.Sum64String(n.ID)
}

// Key returns the identity of the node for use as a map key.
func (n Node) Key() string {
	return n.ID
}

// DeepEqual reports whether a and b are equal field for field, including the
// entire branch structure and order. A nil and an empty Branches compare equal.
func DeepEqual(a, b Node) bool {
	if a.ID != b.ID || a.Label != b.Label {
		return false
	}
	if !equalText(a.Question, b.Question) ||
		!equalText(a.Result, b.Result) ||
		!equalText(a.Note, b.Note) ||
		!equalText(a.Tag, b.Tag) {
		return false
	}
	if len(a.Branches) != len(b.Branches) {
		return false
	}
	for i := range a.Branches {
		if !DeepEqual(a.Branches[i], b.Branches[i]) {
			return false
		}
	}
	return true
}

func equalText(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
