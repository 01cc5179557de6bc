package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	m := initialModel(DefaultConfig(), path, demoMenu)
	m.dark = false
	m.demo = demoLab
	m.saveState()

	state, ok := loadState(path)
	require.True(t, ok)
	assert.False(t, state.DarkMode)
	assert.Equal(t, "lab", state.LastDemo)
	assert.Equal(t, demoLab, demoFromString(state.LastDemo))
}

func TestLoadStateMissingFile(t *testing.T) {
	_, ok := loadState(filepath.Join(t.TempDir(), "nope.json"))
	assert.False(t, ok)
}

func TestDemoNameRoundTrip(t *testing.T) {
	for _, d := range []demo{demoMenu, demoCard, demoLab, demoLoader} {
		assert.Equal(t, d, demoFromString(d.String()))
	}
	// Unknown names fall back to the menu
	assert.Equal(t, demoMenu, demoFromString("garbage"))
}
