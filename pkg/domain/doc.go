/*
Package domain contains the decision tree document model used by arbor.

It defines the Node entity and the pure operations that edit a tree of nodes.
The package is kept free of I/O, persistence and logging; callers (the
session, the CLI, the servers) own the authoritative tree value and swap it
for the values returned here.

# Key Entities

  - Node: a point in the tree. It is a leaf when it carries a Result, and it
    is branching when it carries child Branches. The two states are exclusive.
  - Branch: a child Node, reached by the answer text in its Label.
  - Root: the single node without a parent, conventionally identified by RootID.

Every mutation returns a new tree. Slices on the path to an edited node are
reallocated; everything else is shared with the input.
*/
package domain
