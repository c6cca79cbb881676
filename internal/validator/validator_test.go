package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
)

func TestValidateTree(t *testing.T) {
	// 1. Scenario A: Valid tree
	if err := ValidateTree(domain.SampleTree(), Strict()); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}

	// 2. Scenario B: every kind of error at once
	broken := domain.Node{
		ID:       "start",
		Question: domain.Text("Pick one"),
		Result:   domain.Text("done"),
		Branches: []domain.Node{
			{ID: "a", Label: "Same"},
			{ID: "a", Label: "Same"},
			{ID: "", Label: "Empty"},
		},
	}

	err := ValidateTree(broken, Strict())
	if err == nil {
		t.Fatal("Scenario B (Broken) should have failed, but got nil")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	for _, want := range []string{
		"root id must be",
		"both a result and 3 branches",
		`duplicate branch label "Same"`,
		`duplicate id "a"`,
		"empty id",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error, got: %v", want, err)
		}
	}
	if len(verr.Issues) != 5 {
		t.Errorf("expected 5 issues, got %d: %v", len(verr.Issues), verr.Issues)
	}
}

func TestValidateTree_NonStrictAcceptsAnyRootID(t *testing.T) {
	tree := domain.Node{ID: "custom", Label: ""}
	if err := ValidateTree(tree); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTree(tree, Strict()); err == nil {
		t.Error("strict mode should reject a custom root id")
	}
}

func TestCheck_WarningsDoNotFail(t *testing.T) {
	tree := domain.Node{
		ID:       domain.RootID,
		Branches: []domain.Node{{ID: "a", Label: "A", Result: domain.Text("x")}},
	}

	issues := Check(tree)
	if len(issues) != 1 || issues[0].Severity != SeverityWarning {
		t.Fatalf("expected a single warning, got %v", issues)
	}
	if err := ValidateTree(tree); err != nil {
		t.Errorf("warnings alone should not fail validation: %v", err)
	}
}

func TestCheck_ReportsPath(t *testing.T) {
	tree := domain.SampleTree()
	tree.Branches[1].Branches[0].ID = "red"

	issues := Check(tree)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Path != "Blue > Calm" {
		t.Errorf("path = %q, want %q", issues[0].Path, "Blue > Calm")
	}
	if !strings.HasPrefix(issues[0].String(), "error: red (Blue > Calm)") {
		t.Errorf("unexpected rendering %q", issues[0].String())
	}
}
