package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, codec.SaveFile(domain.SampleTree(), path))

	ed := session.NewEditor()
	require.NoError(t, ed.Open(path))
	return NewServer(ed), path
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func TestGetTree(t *testing.T) {
	s, _ := newTestServer(t)

	out, isErr := call(t, s.handleGetTree, nil)

	assert.False(t, isErr)
	tree, err := codec.Unmarshal([]byte(out))
	require.NoError(t, err)
	assert.True(t, domain.DeepEqual(domain.SampleTree(), tree))
}

func TestFindNode(t *testing.T) {
	s, _ := newTestServer(t)

	out, isErr := call(t, s.handleFindNode, map[string]any{"id": "red-bold"})
	assert.False(t, isErr)
	assert.Contains(t, out, "You value confidence and strength.")

	out, isErr = call(t, s.handleFindNode, map[string]any{"id": "ghost"})
	assert.True(t, isErr)
	assert.Contains(t, out, "node not found")

	_, isErr = call(t, s.handleFindNode, map[string]any{})
	assert.True(t, isErr, "id is required")
}

func TestEditingTools(t *testing.T) {
	s, path := newTestServer(t)

	out, isErr := call(t, s.handleSetResult, map[string]any{"id": "blue", "result": "Blue wins"})
	require.False(t, isErr, out)
	blue, _ := s.editor.Find("blue")
	assert.True(t, blue.IsLeaf())

	out, isErr = call(t, s.handleAddBranch, map[string]any{"id": "blue"})
	require.False(t, isErr, out)
	assert.Contains(t, out, `"label": "New Branch"`)
	blue, _ = s.editor.Find("blue")
	assert.False(t, blue.IsLeaf())

	out, isErr = call(t, s.handleUpdateNode, map[string]any{"id": "blue", "question": "Which blue?", "note": "navy counts"})
	require.False(t, isErr, out)
	blue, _ = s.editor.Find("blue")
	assert.Equal(t, "Which blue?", domain.Value(blue.Question))
	assert.Equal(t, "navy counts", domain.Value(blue.Note))
	assert.Equal(t, "Blue", blue.Label, "omitted fields are kept")

	out, isErr = call(t, s.handleRemoveBranch, map[string]any{"id": "blue", "label": "New Branch"})
	require.False(t, isErr, out)
	blue, _ = s.editor.Find("blue")
	assert.Nil(t, blue.Branches)

	_, isErr = call(t, s.handleRemoveNode, map[string]any{"id": domain.RootID})
	assert.True(t, isErr)

	_, isErr = call(t, s.handleRemoveNode, map[string]any{"id": "green"})
	assert.False(t, isErr)

	out, isErr = call(t, s.handleSave, nil)
	require.False(t, isErr, out)
	saved, err := codec.LoadFile(path)
	require.NoError(t, err)
	_, ok := domain.Find(saved, "green")
	assert.False(t, ok)
}

func TestQuery(t *testing.T) {
	s, _ := newTestServer(t)

	out, isErr := call(t, s.handleQuery, map[string]any{"expr": `leaf && path startsWith "Red"`})
	require.False(t, isErr, out)
	assert.JSONEq(t, `[
		{"id":"red-warm","path":"Red/Warm","text":"You like passion and energy."},
		{"id":"red-bold","path":"Red/Bold","text":"You value confidence and strength."}
	]`, out)

	_, isErr = call(t, s.handleQuery, map[string]any{"expr": "label =="})
	assert.True(t, isErr)
}

func TestGetGraph(t *testing.T) {
	s, _ := newTestServer(t)

	out, isErr := call(t, s.handleGetGraph, nil)
	require.False(t, isErr)
	assert.Contains(t, out, "graph TD")

	out, isErr = call(t, s.handleGetGraph, map[string]any{"format": "dot"})
	require.False(t, isErr)
	assert.Contains(t, out, "digraph")
}

func TestSave_Unsaved(t *testing.T) {
	s := NewServer(session.NewEditor())

	out, isErr := call(t, s.handleSave, nil)

	assert.True(t, isErr)
	assert.Contains(t, out, "SaveAs")
}
