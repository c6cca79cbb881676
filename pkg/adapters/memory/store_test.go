package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunPreferenceStoreContract(t, memory.NewStore())
}

func TestMemoryStore_AllIsACopy(t *testing.T) {
	store := memory.NewStore(map[string]string{"a": "1"})
	ctx := context.Background()

	all, _ := store.All(ctx)
	all["a"] = "changed"

	got, err := store.Get(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, "1", got)
}
