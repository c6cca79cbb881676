package domain

const (
	// RootID is the conventional identifier of the root node of a document.
	RootID = "node-root"

	// NewBranchLabel is the base label given to branches created by AddBranch.
	// Subsequent branches on the same node are suffixed "New Branch 2", "New Branch 3", ...
	NewBranchLabel = "New Branch"

	// PlaceholderQuestion is the question set on branches created by AddBranch.
	PlaceholderQuestion = "New Child"

	// UntitledText is shown for a node that has neither a result nor a question.
	UntitledText = "Untitled Node"
)
