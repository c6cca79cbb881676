package query_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(matches []query.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Node.ID)
	}
	return out
}

func TestSelect(t *testing.T) {
	tree := domain.SampleTree()

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{name: "Leaves Under Blue", expr: `leaf && path startsWith "Blue/"`, want: []string{"blue-calm", "blue-cool"}},
		{name: "By Depth", expr: `depth == 1`, want: []string{"red", "blue", "green"}},
		{name: "Root Only", expr: `id == "node-root"`, want: []string{domain.RootID}},
		{name: "Branch Count", expr: `branches == 3`, want: []string{domain.RootID}},
		{name: "No Match", expr: `label == "Purple"`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.Select(tree, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSelect_EmptyMatchesEverything(t *testing.T) {
	got, err := query.Select(domain.SampleTree(), "  ")
	require.NoError(t, err)
	assert.Len(t, got, domain.Count(domain.SampleTree()))
}

func TestSelect_AbsentFieldsAreEmpty(t *testing.T) {
	tree := domain.Node{
		ID: domain.RootID,
		Branches: []domain.Node{
			{ID: "a", Label: "A", Tag: domain.Text("showMap")},
			{ID: "b", Label: "B"},
		},
	}

	got, err := query.Select(tree, `tag == ""`)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RootID, "b"}, ids(got))
}

func TestSelect_MatchCarriesPath(t *testing.T) {
	got, err := query.Select(domain.SampleTree(), `id == "green-growth"`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Depth)
	assert.Equal(t, []string{"Green", "Growth"}, got[0].Path)
}

func TestCompile_Invalid(t *testing.T) {
	for _, src := range []string{`label ==`, `label`, `unknown == 1`} {
		_, err := query.Compile(src)
		assert.ErrorIs(t, err, query.ErrInvalidQuery, src)
	}
}
