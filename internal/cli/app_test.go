package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/arbor/internal/settings"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_FilePreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	app, err := NewApp(context.Background(), Options{Prefs: PrefsFile, PrefsPath: path, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, settings.Defaults(), app.Settings)

	require.NoError(t, app.SetSetting(context.Background(), settings.KeyDefaultRootLabel, "Start"))

	reopened, err := NewApp(context.Background(), Options{PrefsPath: path, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, "Start", reopened.Settings.DefaultRootLabel)
}

func TestNewApp_RedisPreferences(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.HSet("arbor:settings", settings.KeyConfirmDestructiveActions, "false")

	app, err := NewApp(context.Background(), Options{Prefs: PrefsRedis, RedisAddr: mr.Addr(), Out: &bytes.Buffer{}})
	require.NoError(t, err)
	defer app.Close()

	assert.False(t, app.Settings.ConfirmDestructiveActions)
	assert.True(t, app.Settings.SidebarColoredText)
}

func TestNewApp_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewApp(context.Background(), Options{Prefs: PrefsRedis, RedisAddr: addr, Out: &bytes.Buffer{}})
	assert.ErrorContains(t, err, "failed to reach redis")
}

func TestNewApp_UnknownBackend(t *testing.T) {
	_, err := NewApp(context.Background(), Options{Prefs: "etcd", Out: &bytes.Buffer{}})
	assert.ErrorContains(t, err, "unknown preference backend")
}

func TestNewApp_InvalidStoredValue(t *testing.T) {
	store := memory.NewStore(map[string]string{settings.KeySidebarColoredText: "sometimes"})

	_, err := NewApp(context.Background(), Options{Store: store, Out: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestSettingsCommands(t *testing.T) {
	var out bytes.Buffer
	app, err := NewApp(context.Background(), Options{Store: memory.NewStore(), Out: &out})
	require.NoError(t, err)

	app.ListSettings()
	assert.Equal(t, "confirmDestructiveActions=true\ndefaultRootLabel=Root\nsidebarColoredText=true\n", out.String())

	out.Reset()
	require.NoError(t, app.SetSetting(context.Background(), settings.KeySidebarColoredText, "0"))
	require.NoError(t, app.GetSetting(settings.KeySidebarColoredText))
	assert.Equal(t, "false\n", out.String())

	assert.Error(t, app.GetSetting("theme"))
	assert.Error(t, app.SetSetting(context.Background(), "theme", "dark"))
	assert.Error(t, app.SetSetting(context.Background(), settings.KeyConfirmDestructiveActions, "maybe"))

	require.NoError(t, app.ResetSettings(context.Background()))
	assert.Equal(t, settings.Defaults(), app.Settings)
	all, err := app.Prefs.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
