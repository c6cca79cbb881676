package dsl

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/internal/validator"
	"github.com/aretw0/arbor/pkg/domain"
)

func TestBuilder_SampleTree(t *testing.T) {
	branch := func(id, label, question string, leaves ...[3]string) func(*NodeBuilder) {
		return func(n *NodeBuilder) {
			n.ID(id).Ask(question)
			for _, l := range leaves {
				n.Branch(l[1], func(c *NodeBuilder) { c.ID(l[0]).Result(l[2]) })
			}
		}
	}

	got, err := New("Root").
		Ask("What is your favorite color?").
		Branch("Red", branch("red", "Red", "Why do you like red?",
			[3]string{"red-warm", "Warm", "You like passion and energy."},
			[3]string{"red-bold", "Bold", "You value confidence and strength."})).
		Branch("Blue", branch("blue", "Blue", "Why do you like blue?",
			[3]string{"blue-calm", "Calm", "You appreciate peace and stability."},
			[3]string{"blue-cool", "Cool", "You value rationality and clarity."})).
		Branch("Green", branch("green", "Green", "Why do you like green?",
			[3]string{"green-nature", "Nature", "You feel connected to the outdoors."},
			[3]string{"green-growth", "Growth", "You value progress and renewal."})).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if !domain.DeepEqual(domain.SampleTree(), got) {
		t.Errorf("built tree differs from the sample tree")
	}
}

func TestBuilder_GeneratesIDs(t *testing.T) {
	root := New("Root").
		Ask("Pick one").
		Leaf("A", "first").
		Leaf("B", "second").
		MustBuild()

	if root.ID != domain.RootID {
		t.Errorf("expected root id %q, got %q", domain.RootID, root.ID)
	}
	if len(root.Branches) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(root.Branches))
	}
	a, b := root.Branches[0], root.Branches[1]
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct generated ids, got %q and %q", a.ID, b.ID)
	}
	if !a.IsLeaf() || domain.Value(a.Result) != "first" {
		t.Errorf("expected leaf A with result 'first', got %+v", a)
	}
}

func TestBuilder_ResultAndBranchAreExclusive(t *testing.T) {
	n := New("Root").Leaf("A", "a").Result("done").Node()
	if !n.IsLeaf() || n.IsBranching() {
		t.Errorf("Result should drop branches: %+v", n)
	}

	n = New("Root").Result("done").Leaf("A", "a").Node()
	if n.IsLeaf() || !n.IsBranching() {
		t.Errorf("Branch should clear the result: %+v", n)
	}
}

func TestBuilder_OptionalFields(t *testing.T) {
	n := New("Root").Note("draft").Tag("v1").Node()

	if domain.Value(n.Note) != "draft" || domain.Value(n.Tag) != "v1" {
		t.Errorf("unexpected optional fields: %+v", n)
	}
	if n.Question != nil || n.Result != nil {
		t.Errorf("unset fields should stay absent: %+v", n)
	}
}

func TestBuilder_Invalid(t *testing.T) {
	_, err := New("Root").
		Ask("Pick").
		Leaf("Same", "one").
		Leaf("Same", "two").
		Build()

	var verr *validator.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validator.Error, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustBuild should panic on an invalid tree")
		}
	}()
	New("Root").Ask("Pick").
		Branch("X", func(n *NodeBuilder) { n.ID("dup").Result("x") }).
		Branch("Y", func(n *NodeBuilder) { n.ID("dup").Result("y") }).
		MustBuild()
}
