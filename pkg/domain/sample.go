package domain

// SampleTree returns the colour questionnaire used by `arbor sample` and in examples.
func SampleTree() Node {
	leaf := func(id, label, result string) Node {
		return Node{ID: id, Label: label, Result: Text(result)}
	}
	question := func(id, label, q string, branches ...Node) Node {
		return Node{ID: id, Label: label, Question: Text(q), Branches: branches}
	}

	return question(RootID, "Root", "What is your favorite color?",
		question("red", "Red", "Why do you like red?",
			leaf("red-warm", "Warm", "You like passion and energy."),
			leaf("red-bold", "Bold", "You value confidence and strength."),
		),
		question("blue", "Blue", "Why do you like blue?",
			leaf("blue-calm", "Calm", "You appreciate peace and stability."),
			leaf("blue-cool", "Cool", "You value rationality and clarity."),
		),
		question("green", "Green", "Why do you like green?",
			leaf("green-nature", "Nature", "You feel connected to the outdoors."),
			leaf("green-growth", "Growth", "You value progress and renewal."),
		),
	)
}
