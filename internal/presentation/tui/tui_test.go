package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestOutline(t *testing.T) {
	out := Outline(domain.SampleTree(), OutlineOptions{})

	lines := strings.Split(out, "\n")
	assert.Equal(t, "What is your favorite color?", strings.TrimSpace(lines[0]))
	assert.Equal(t, domain.Count(domain.SampleTree())-1, strings.Count(out, "── "))
	assert.Contains(t, out, "Red: Why do you like red?")
	assert.Contains(t, out, "Warm: You like passion and energy.")
	assert.Contains(t, out, "╰── Green: Why do you like green?")
}

func TestOutline_ShowIDs(t *testing.T) {
	out := Outline(domain.SampleTree(), OutlineOptions{ShowIDs: true})
	assert.Contains(t, out, "[node-root]")
	assert.Contains(t, out, "Cool: You value rationality and clarity. [blue-cool]")
}

func TestOutline_SingleNode(t *testing.T) {
	out := Outline(domain.NewTree("Root"), OutlineOptions{Colored: true})
	assert.Contains(t, out, domain.UntitledText)
}

func TestDetailMarkdown(t *testing.T) {
	red, _ := domain.Find(domain.SampleTree(), "red")
	red = domain.SetNote(red, "Ask politely")

	md := DetailMarkdown(red)

	assert.True(t, strings.HasPrefix(md, "# Red\n"))
	assert.Contains(t, md, "`red`")
	assert.Contains(t, md, "**Question:** Why do you like red?")
	assert.Contains(t, md, "> Ask politely")
	assert.Contains(t, md, "- **Warm** → You like passion and energy. _(result)_")
	assert.NotContains(t, md, "**Result:**")
}

func TestRenderDetail_FallsBack(t *testing.T) {
	leaf := domain.NewLeaf("Yes", "Done")
	failing := func(string) (string, error) { return "", errors.New("no terminal") }

	assert.Equal(t, DetailMarkdown(leaf), RenderDetail(leaf, failing))
	assert.Equal(t, DetailMarkdown(leaf), RenderDetail(leaf, nil))
}

func TestNewRenderer(t *testing.T) {
	out, err := NewRenderer()("# Title")
	assert.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), "|_.__/")
}
