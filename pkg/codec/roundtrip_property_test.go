package codec_test

import (
	"testing"

	"github.com/aretw0/arbor/internal/testutils"
	"github.com/aretw0/arbor/pkg/codec"
	"github.com/aretw0/arbor/pkg/domain"
	"pgregory.net/rapid"
)

func TestProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := testutils.Tree().Draw(t, "tree")

		data, err := codec.Marshal(tree)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		got, err := codec.Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal: %v\n%s", err, data)
		}
		if !domain.DeepEqual(tree, got) {
			t.Fatalf("round trip changed the tree:\n%s", data)
		}
	})
}

func TestProperty_MarshalIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := testutils.Tree().Draw(t, "tree")

		a, err := codec.Marshal(tree)
		if err != nil {
			t.Fatal(err)
		}
		b, err := codec.Marshal(domain.Clone(tree))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Fatalf("encoding is not stable")
		}
	})
}
