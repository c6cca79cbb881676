package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// IsTerminal reports whether stdin is connected to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks a yes/no question before a destructive action. Without a
// terminal the form falls back to accessible mode, which reads a plain
// answer from stdin.
func Confirm(ctx context.Context, title, description string) (bool, error) {
	ok := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&ok).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	if !IsTerminal() {
		form = form.WithAccessible(true)
	}

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return ok, nil
}
