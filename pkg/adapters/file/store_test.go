package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/arbor/pkg/adapters/file"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "nested", "settings.yaml"))
	ports.RunPreferenceStoreContract(t, store)
}

func TestFileStore_WritesSortedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := file.New(path)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sidebarColoredText", "false"))
	require.NoError(t, store.Set(ctx, "defaultRootLabel", "Start"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "defaultRootLabel: Start\nsidebarColoredText: \"false\"\n", string(raw))
}

func TestFileStore_ReadsHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confirmDestructiveActions: no\n"), 0644))

	got, err := file.New(path).Get(context.Background(), "confirmDestructiveActions")
	require.NoError(t, err)
	assert.Equal(t, "no", got)
}

func TestFileStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0644))

	_, err := file.New(path).All(context.Background())
	assert.Error(t, err)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	all, err := file.New(path).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	if _, err := os.UserConfigDir(); err != nil {
		t.Skip("no user config dir on this platform")
	}
	assert.Equal(t, "settings.yaml", filepath.Base(file.DefaultPath()))
	assert.Equal(t, "arbor", filepath.Base(filepath.Dir(file.DefaultPath())))
}
