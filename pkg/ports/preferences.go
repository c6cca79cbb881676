package ports

import (
	"context"
	"errors"
)

// ErrPreferenceNotFound is returned by PreferenceStore.Get for unknown keys.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStore persists application preferences as string key/value pairs.
// Typed decoding is left to the caller.
type PreferenceStore interface {
	// Get returns the value stored under key.
	// Returns ErrPreferenceNotFound if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// All returns every stored preference.
	All(ctx context.Context) (map[string]string, error)
}
