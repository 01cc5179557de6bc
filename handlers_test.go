package main

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/flipdeck/motion"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := initialModel(DefaultConfig(), filepath.Join(t.TempDir(), "state.json"), demoMenu)
	m.handleWindowSize(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestFlipCompletes(t *testing.T) {
	m := newTestModel(t)
	m.openDemo(demoCard)

	_, cmd := m.handleFlip()
	assert.NotNil(t, cmd)
	assert.True(t, m.cardFlipping)
	assert.False(t, m.cardFlipped)

	// Well past the configured flip duration
	m.handleFrame(time.Now().Add(time.Minute))
	assert.False(t, m.cardFlipping)
	assert.True(t, m.cardFlipped)
	assert.Equal(t, 0.0, m.cardProgress)
}

func TestMoveAccumulatesPosition(t *testing.T) {
	m := newTestModel(t)
	m.openDemo(demoLab)
	m.distanceInput.SetValue("10")
	m.speedInput.SetValue("20")

	m.handleMove(motion.Right)
	assert.Equal(t, 10.0, m.labPos)
	assert.Equal(t, 10.0, m.boxTarget)
	// 10 cells at 20 cells/s is half a second
	assert.Contains(t, m.lastMove, "0.5s")

	m.distanceInput.SetValue("4")
	m.handleMove(motion.Left)
	assert.Equal(t, 6.0, m.labPos)

	m.handleFrame(time.Now().Add(time.Minute))
	assert.False(t, m.gliding)
	assert.Equal(t, 6.0, m.boxPos)
}

func TestMoveFallsBackToDefaults(t *testing.T) {
	m := newTestModel(t)
	m.openDemo(demoLab)
	m.distanceInput.SetValue("not a number")
	m.speedInput.SetValue("")

	distance, speed := m.labValues()
	assert.Equal(t, m.config.DefaultDistance, distance)
	assert.Equal(t, m.config.DefaultSpeed, speed)
}

func TestToggleThemeFadesAndPersists(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.dark)

	cmd := m.toggleTheme()
	assert.NotNil(t, cmd)
	assert.False(t, m.dark)
	assert.True(t, m.fading)

	// The flag is written immediately, not at fade completion
	state, ok := loadState(m.statePath)
	require.True(t, ok)
	assert.False(t, state.DarkMode)

	m.handleFrame(time.Now().Add(time.Minute))
	assert.False(t, m.fading)
	assert.Equal(t, lightPalette, m.pal)
}

func TestLoaderReportsComputedDuration(t *testing.T) {
	m := newTestModel(t)
	m.openDemo(demoLoader)

	m.handleLoaderStart()
	assert.True(t, m.loading)
	// 120 items at 60 items/s
	assert.Equal(t, 2.0, m.loadSeconds)

	m.handleFrame(time.Now().Add(time.Minute))
	assert.False(t, m.loading)
	assert.Equal(t, "Loaded 120 items in 2s", m.loadedIn)
}

func TestModalSpringSettles(t *testing.T) {
	m := newTestModel(t)

	m.handleModalToggle()
	assert.True(t, m.modalOpen)
	assert.True(t, m.modalAnimating())

	now := time.Now()
	for i := 0; i < 600 && m.modalAnimating(); i++ {
		now = now.Add(33 * time.Millisecond)
		m.handleFrame(now)
	}
	assert.False(t, m.modalAnimating())
	assert.InDelta(t, modalRest, m.modalPos, 0.01)
}

func TestEscapeClosesOverlaysBeforeNavigating(t *testing.T) {
	m := newTestModel(t)
	m.openDemo(demoCard)

	m.handleModalToggle()
	m.handleEscape()
	assert.False(t, m.modalOpen)
	assert.Equal(t, demoCard, m.demo)

	m.handleEscape()
	assert.Equal(t, demoMenu, m.demo)
}

func TestNavigationHistory(t *testing.T) {
	m := newTestModel(t)

	m.openDemo(demoLab)
	m.openDemo(demoLoader)
	assert.True(t, m.canGoBack())

	m.goBack()
	assert.Equal(t, demoLab, m.demo)
	m.goBack()
	assert.Equal(t, demoMenu, m.demo)
	assert.False(t, m.canGoBack())

	// Going back at the root is a no-op
	m.goBack()
	assert.Equal(t, demoMenu, m.demo)
}

func TestViewRendersEveryDemo(t *testing.T) {
	m := newTestModel(t)

	for _, d := range []demo{demoMenu, demoCard, demoLab, demoLoader} {
		m.demo = d
		assert.NotEmpty(t, m.View(), "demo %s", d)
	}

	m.handleModalToggle()
	assert.NotEmpty(t, m.View())
}
