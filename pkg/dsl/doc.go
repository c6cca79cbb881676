/*
Package dsl provides a fluent builder for constructing decision trees in Go.

It is an alternative to writing documents by hand, useful for generating
trees, for tests and for seeding new documents.

Example usage:

	root, err := dsl.New("Root").
		Ask("What is your favorite color?").
		Branch("Red", func(n *dsl.NodeBuilder) {
			n.ID("red").
				Ask("Why do you like red?").
				Leaf("Warm", "You like passion and energy.").
				Leaf("Bold", "You value confidence and strength.")
		}).
		Leaf("Blue", "You appreciate peace and stability.").
		Build()

Nodes without an explicit ID receive a generated one. Build validates the
result, so duplicate IDs or repeated branch labels are reported as errors.
*/
package dsl
