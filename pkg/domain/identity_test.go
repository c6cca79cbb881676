package domain

import "testing"

func TestEqualByID(t *testing.T) {
	a := Node{ID: "x", Label: "one", Result: Text("r")}
	b := Node{ID: "x", Label: "two"}
	c := Node{ID: "y", Label: "one", Result: Text("r")}

	if !EqualByID(a, b) {
		t.Errorf("nodes with the same id should be equal")
	}
	if EqualByID(a, c) {
		t.Errorf("nodes with different ids should not be equal")
	}
	if a.HashByID() != b.HashByID() {
		t.Errorf("HashByID must agree with EqualByID")
	}
	if a.HashByID() == c.HashByID() {
		t.Errorf("unexpected hash collision for distinct ids")
	}
	if a.Key() != "x" {
		t.Errorf("Key() = %q, want %q", a.Key(), "x")
	}
}

func TestDeepEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"Identical", Node{ID: "a", Note: Text("n")}, Node{ID: "a", Note: Text("n")}, true},
		{"Nil vs Empty Branches", Node{ID: "a"}, Node{ID: "a", Branches: []Node{}}, true},
		{"Absent vs Empty Text", Node{ID: "a"}, Node{ID: "a", Tag: Text("")}, false},
		{"Different Label", Node{ID: "a", Label: "x"}, Node{ID: "a", Label: "y"}, false},
		{"Branch Order", Node{ID: "a", Branches: []Node{{ID: "1"}, {ID: "2"}}}, Node{ID: "a", Branches: []Node{{ID: "2"}, {ID: "1"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeepEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("DeepEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}
