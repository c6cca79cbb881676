package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the arbor banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Greens fading into a bark brown.
	lines := []struct {
		text, color string
	}{
		{"                  _                ", "#86efac"},
		{"   __ _ _ __ ___ | |__   ___  _ __ ", "#4ade80"},
		{"  / _` | '__/ _ \\| '_ \\ / _ \\| '__|", "#22c55e"},
		{" | (_| | | | (_) | |_) | (_) | |   ", "#16a34a"},
		{"  \\__,_|_|  \\___/|_.__/ \\___/|_|   ", "#a16207"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
