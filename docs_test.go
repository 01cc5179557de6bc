package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNote = `<!DOCTYPE html>
<html>
<head><title>Sample</title></head>
<body>
  <h2>A heading</h2>
  <p>Short paragraph.</p>
  <ul><li>First point</li><li>Second point</li></ul>
  <blockquote>A callout.</blockquote>
</body>
</html>`

func newDocsModel(t *testing.T) *model {
	t.Helper()
	m := initialModel(DefaultConfig(), filepath.Join(t.TempDir(), "state.json"), demoMenu)
	m.handleWindowSize(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestExtractNotes(t *testing.T) {
	m := newDocsModel(t)
	out := m.extractNotes(sampleNote)

	assert.Contains(t, out, "Sample")
	assert.Contains(t, out, "A heading")
	assert.Contains(t, out, "Short paragraph.")
	assert.Contains(t, out, "• First point")
	assert.Contains(t, out, "A callout.")
}

func TestDemoNotesBundled(t *testing.T) {
	m := newDocsModel(t)

	for d, title := range map[demo]string{
		demoCard:   "Flip Card",
		demoLab:    "Motion Lab",
		demoLoader: "Loader",
	} {
		notes := m.demoNotes(d)
		assert.Contains(t, notes, title, "demo %s", d)
	}
}

func TestDemoNotesMissing(t *testing.T) {
	m := newDocsModel(t)
	assert.Contains(t, m.demoNotes(demoMenu), "No notes")
}

func TestRenderWithStyle(t *testing.T) {
	out, err := renderWithStyle("# Title\n\nSome *styled* text.", true, 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestLoadHelpContent(t *testing.T) {
	out := loadHelpContent(false, 60)
	assert.NotEmpty(t, out)
	assert.NotEqual(t, "Help is unavailable.", out)
}
