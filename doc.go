/*
Package arbor edits decision trees: questionnaires where every node either
asks a question and offers labelled branches, or ends the walk with a result.

# Concept

A document is one tree stored as a single JSON file with sorted keys. The
tree is an immutable value: operations in pkg/domain return a new tree and
leave their input untouched, and a session.Editor holds the one current value
for an open document. The same editor backs the CLI, the HTTP API and the
MCP tool server.

# Key Features

  - Value Semantics: Find, Replace, AddBranch and RemoveBranch never mutate their input.
  - Leaf/Branch Invariant: a node never carries both a result and branches.
  - Strict Decoding: malformed documents are rejected with the offending JSON path.
  - Atomic Saves: documents are written to a temporary file and renamed into place.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/domain"
	)

	func main() {
		ed := arbor.New()

		child, err := ed.AddBranch(domain.RootID)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := ed.SetResult(child.ID, "You like red!"); err != nil {
			log.Fatal(err)
		}

		if err := ed.SaveAs("colors.json"); err != nil {
			log.Fatal(err)
		}
		fmt.Println(domain.Count(ed.Snapshot()), "nodes saved")
	}
*/
package arbor
