package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		root     domain.Node
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes",
			root: domain.SampleTree(),
			contains: []string{
				"graph TD\n",
				`n0(("What is your favorite color?"))`,
				`n1[/"Why do you like red?"/]`,
				`n2(["You like passion and energy."])`,
			},
		},
		{
			name: "Labelled Edges",
			root: domain.SampleTree(),
			contains: []string{
				`n0 -- "Red" --> n1`,
				`n4 -- "Cool" --> n6`,
			},
		},
		{
			name: "Untitled Node",
			root: domain.Node{ID: domain.RootID, Branches: []domain.Node{{ID: "x"}}},
			contains: []string{
				`n1["Untitled Node"]`,
				"n0 --> n1",
			},
		},
		{
			name: "Quotes Escaped",
			root: domain.Node{ID: domain.RootID, Question: domain.Text(`Say "hi"?`)},
			contains: []string{`"Say 'hi'?"`},
		},
		{
			name:     "Overlay",
			root:     domain.SampleTree(),
			overlay:  &graph.Overlay{Highlighted: []string{"red", "red", "blue-calm"}, CurrentNode: "green"},
			contains: []string{"classDef highlighted", "class n1 highlighted;", "class n5 highlighted;", "class n7 current;"},
		},
		{
			name:     "No Overlay",
			root:     domain.SampleTree(),
			excludes: []string{"classDef"},
		},
		{
			name: "Colliding IDs",
			root: domain.Node{ID: domain.RootID, Question: domain.Text("?"), Branches: []domain.Node{
				{ID: "a-b", Label: "Dash", Result: domain.Text("dash")},
				{ID: "a_b", Label: "Underscore", Result: domain.Text("underscore")},
			}},
			overlay: &graph.Overlay{Highlighted: []string{"a-b"}},
			contains: []string{
				`n1(["dash"])`,
				`n2(["underscore"])`,
				`n0 -- "Dash" --> n1`,
				`n0 -- "Underscore" --> n2`,
				"class n1 highlighted;",
			},
			excludes: []string{"class n2 highlighted;"},
		},
		{
			name:     "Unknown Overlay IDs",
			root:     domain.SampleTree(),
			overlay:  &graph.Overlay{Highlighted: []string{"ghost"}, CurrentNode: "ghost"},
			contains: []string{"classDef current"},
			excludes: []string{"class n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.root, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("expected output not to contain %q", bad)
				}
			}
		})
	}

	overlay := &graph.Overlay{Highlighted: []string{"red", "red"}}
	if n := strings.Count(graph.GenerateMermaid(domain.SampleTree(), overlay), "class n1 highlighted;"); n != 1 {
		t.Errorf("highlighted nodes should be deduplicated, got %d", n)
	}
}
