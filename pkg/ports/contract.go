package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPreferenceStoreContract runs a suite of tests to verify that a
// PreferenceStore implementation adheres to the interface contract.
// The store must start empty.
func RunPreferenceStoreContract(t *testing.T, store PreferenceStore) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "defaultRootLabel", "Start"))

		got, err := store.Get(ctx, "defaultRootLabel")
		require.NoError(t, err)
		assert.Equal(t, "Start", got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sidebarColoredText", "true"))
		require.NoError(t, store.Set(ctx, "sidebarColoredText", "false"))

		got, err := store.Get(ctx, "sidebarColoredText")
		require.NoError(t, err)
		assert.Equal(t, "false", got)
	})

	t.Run("Empty Value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "blank", ""))

		got, err := store.Get(ctx, "blank")
		require.NoError(t, err, "an empty value is still a stored value")
		assert.Equal(t, "", got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent")
		assert.ErrorIs(t, err, ErrPreferenceNotFound)
	})

	t.Run("All", func(t *testing.T) {
		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"defaultRootLabel":   "Start",
			"sidebarColoredText": "false",
			"blank":              "",
		}, all)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "blank"))
		require.NoError(t, store.Delete(ctx, "blank"), "deleting twice is not an error")

		_, err := store.Get(ctx, "blank")
		assert.ErrorIs(t, err, ErrPreferenceNotFound)

		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
