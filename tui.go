package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/zam-dot/flipdeck/motion"
)

// ============================================================================
// MESSAGE TYPES
// ============================================================================

// frameMsg is one tick of the animation clock. It is only scheduled while
// something on screen is moving, so an idle playground costs nothing.
type frameMsg time.Time

// ============================================================================
// MODEL CONSTRUCTION
// ============================================================================

// initialModel creates a new model with the starting state
func initialModel(config Config, statePath string, start demo) *model {
	// A config file can hand us anything; the frame clock and the spring
	// both need a sane rate
	if config.FPS <= 0 {
		config.FPS = DefaultConfig().FPS
	}

	pal := themePalette(config.DarkMode)

	// ============================================================================
	// MENU CONFIGURATION
	// ============================================================================
	items := []list.Item{
		demoItem{d: demoCard, desc: "Two faces, one eased width"},
		demoItem{d: demoLab, desc: "Duration math driving a gliding box"},
		demoItem{d: demoLoader, desc: "Spinner plus an honest progress bar"},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "flipdeck · animation playground"
	menu.SetShowStatusBar(false)   // Hide the "X of Y items" bar
	menu.SetFilteringEnabled(false) // Three items need no search, and it frees up letter keys

	// ============================================================================
	// MOTION LAB INPUTS
	// ============================================================================
	distanceInput := textinput.New()
	distanceInput.Prompt = ""
	distanceInput.CharLimit = 6
	distanceInput.Width = 6
	distanceInput.SetValue(formatNumber(config.DefaultDistance))

	speedInput := textinput.New()
	speedInput.Prompt = ""
	speedInput.CharLimit = 6
	speedInput.Width = 6
	speedInput.SetValue(formatNumber(config.DefaultSpeed))

	m := &model{
		config:        config,
		statePath:     statePath,
		demo:          start,
		menu:          menu,
		dark:          config.DarkMode,
		pal:           pal,
		theme:         newThemeSet(pal),
		distanceInput: distanceInput,
		speedInput:    speedInput,
		tracker:       motion.NewTracker(),
		spin:          spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:           progress.New(progress.WithDefaultGradient()),
		spring: harmonica.NewSpring(
			harmonica.FPS(config.FPS),
			config.SpringFrequency,
			config.SpringDamping,
		),
	}

	// When restored straight into a demo, esc should still lead home
	if start != demoMenu {
		m.history = []demo{demoMenu}
	}

	return m
}

// ============================================================================
// BUBBLE TEA LIFECYCLE
// ============================================================================

// Init is called when the application starts. Nothing animates until the
// first keypress, so there is no initial command.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is called whenever there's a message (user input, frame tick, resize)
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case spinner.TickMsg:
		// The spinner keeps its own clock; only feed it while loading
		if m.loading {
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Everything else (cursor blinks, etc.) goes to the focused input
	switch m.editing {
	case editDistance:
		m.distanceInput, cmd = m.distanceInput.Update(msg)
	case editSpeed:
		m.speedInput, cmd = m.speedInput.Update(msg)
	}
	return m, cmd
}

func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve 1 line at the bottom for the status bar
	m.menu.SetSize(msg.Width, msg.Height-1)

	if !m.ready {
		m.notes = viewport.New(msg.Width, msg.Height-3)
		m.ready = true
	} else {
		m.notes.Width = msg.Width
		m.notes.Height = msg.Height - 3
	}

	m.bar.Width = min(48, max(20, msg.Width-12))
	m.helpText = "" // re-wrap the help on resize
	return m, nil
}

// ============================================================================
// FRAME LOOP
// ============================================================================

// handleFrame advances every running animation to the given instant and
// keeps the clock ticking while anything still moves.
func (m *model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	// Theme cross-fade: rebuild the style set from the blended palette
	if m.fading {
		m.pal = m.fadeSrc.blend(m.fadeTo, m.fade.Progress(now))
		if m.fade.Done(now) {
			m.fading = false
			m.pal = m.fadeTo
		}
		m.theme = newThemeSet(m.pal)
	}

	// Flip card: the face swap itself happens in the renderer at p >= 0.5
	if m.cardFlipping {
		m.cardProgress = m.cardFlip.Progress(now)
		if m.cardFlip.Done(now) {
			m.cardFlipping = false
			m.cardFlipped = !m.cardFlipped
			m.cardProgress = 0
		}
	}

	// Motion lab glide toward the tracker's latest position
	if m.gliding {
		m.boxPos = m.boxFrom + (m.boxTarget-m.boxFrom)*m.glide.Progress(now)
		if m.glide.Done(now) {
			m.gliding = false
			m.boxPos = m.boxTarget
		}
	}

	// Loader fills on a linear timeline of the precomputed duration
	if m.loading {
		m.loadFrac = m.loadTL.Progress(now)
		if m.loadTL.Done(now) {
			m.loading = false
			m.loadFrac = 1
			m.loadedIn = fmt.Sprintf("Loaded %.0f items in %s",
				m.config.LoaderItems, motion.FormatSeconds(m.loadSeconds))
		}
	}

	// Modal spring settles toward its rest position
	if m.modalAnimating() {
		m.modalPos, m.modalVel = m.spring.Update(m.modalPos, m.modalVel, modalRest)
	}

	if m.animating() {
		return m, m.frameCmd()
	}
	m.ticking = false
	return m, nil
}

// frameCmd schedules the next animation tick
func (m *model) frameCmd() tea.Cmd {
	fps := m.config.FPS
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// startFrames kicks off the animation clock unless it is already running.
// Only one tick chain may exist or animations would run double speed.
func (m *model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}
