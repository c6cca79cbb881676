package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, prefs string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--prefs-file", prefs))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	prefs := filepath.Join(dir, "settings.yaml")
	doc := filepath.Join(dir, "colors.json")

	out, err := run(t, prefs, "sample", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	_, err = run(t, prefs, "settings", "set", "confirmDestructiveActions", "false")
	require.NoError(t, err)

	_, err = run(t, prefs, "add-branch", doc, "green-growth")
	require.NoError(t, err)

	_, err = run(t, prefs, "set", doc, "blue", "--result", "Blue it is")
	require.NoError(t, err)

	_, err = run(t, prefs, "remove", doc, "red")
	require.NoError(t, err)

	root, err := codec.LoadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blue", "Green"}, root.Labels())
	growth, _ := domain.Find(root, "green-growth")
	assert.Equal(t, []string{domain.NewBranchLabel}, growth.Labels())

	out, err = run(t, prefs, "validate", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, err = run(t, prefs, "settings", "get", "confirmDestructiveActions")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))
}

func TestVersion(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "settings.yaml"), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "arbor version "))
}
