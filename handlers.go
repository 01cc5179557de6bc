package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/fogleman/ease"

	"github.com/zam-dot/flipdeck/motion"
)

// Handle key messages
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, whatever has focus
	if msg.String() == "ctrl+c" {
		m.saveState()
		return m, tea.Quit
	}

	// While a motion lab field is focused the keystrokes belong to it
	if m.demo == demoLab && m.editing != editNone && !m.overlayOpen() {
		return m.handleEditingKey(msg)
	}

	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit

	case "t":
		return m, m.toggleTheme()

	case "?":
		return m.handleHelpToggle()

	case "m":
		return m.handleModalToggle()

	case "n":
		return m.handleNotesToggle()

	case "esc":
		return m.handleEscape()

	case "enter":
		if m.demo == demoMenu && !m.overlayOpen() {
			return m.handleMenuSelect()
		}

	case " ":
		if m.demo == demoCard && !m.overlayOpen() {
			return m.handleFlip()
		}

	case "left":
		if m.demo == demoLab && !m.overlayOpen() {
			return m.handleMove(motion.Left)
		}

	case "right":
		if m.demo == demoLab && !m.overlayOpen() {
			return m.handleMove(motion.Right)
		}

	case "l":
		if m.demo == demoLoader && !m.overlayOpen() {
			return m.handleLoaderStart()
		}

	case "d":
		if m.demo == demoLab && !m.overlayOpen() {
			return m.focusInput(editDistance)
		}

	case "s":
		if m.demo == demoLab && !m.overlayOpen() {
			return m.focusInput(editSpeed)
		}
	}

	// Not a command: give the key to whichever component is active
	var cmd tea.Cmd
	switch {
	case m.showNotes:
		m.notes, cmd = m.notes.Update(msg)
	case m.demo == demoMenu && !m.overlayOpen():
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

// overlayOpen reports whether help, notes or the modal covers the demo
func (m *model) overlayOpen() bool {
	return m.showHelp || m.showNotes || m.modalOpen
}

// handleEditingKey routes keys while a motion lab input has focus
func (m *model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.distanceInput.Blur()
		m.speedInput.Blur()
		m.editing = editNone
		return m, nil
	case "tab":
		if m.editing == editDistance {
			return m.focusInput(editSpeed)
		}
		return m.focusInput(editDistance)
	}

	var cmd tea.Cmd
	if m.editing == editDistance {
		m.distanceInput, cmd = m.distanceInput.Update(msg)
	} else {
		m.speedInput, cmd = m.speedInput.Update(msg)
	}
	return m, cmd
}

func (m *model) focusInput(which int) (tea.Model, tea.Cmd) {
	m.editing = which
	if which == editDistance {
		m.distanceInput.Focus()
		m.speedInput.Blur()
	} else {
		m.speedInput.Focus()
		m.distanceInput.Blur()
	}
	return m, textinput.Blink
}

// labValues reads the motion lab inputs, falling back to the configured
// defaults when a field does not parse. Range coercion happens in the
// motion package, not here.
func (m *model) labValues() (distance, speed float64) {
	distance = m.config.DefaultDistance
	speed = m.config.DefaultSpeed
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.distanceInput.Value()), 64); err == nil {
		distance = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.speedInput.Value()), 64); err == nil {
		speed = v
	}
	return distance, speed
}

// ============================================================================
// COMMAND HANDLERS
// ============================================================================

// toggleTheme flips the persisted theme flag and cross-fades the palette
func (m *model) toggleTheme() tea.Cmd {
	m.dark = !m.dark
	m.fadeSrc = m.pal // fade from wherever the previous fade got to
	m.fadeTo = themePalette(m.dark)
	m.fading = true
	m.fade = motion.NewTimeline(time.Now(), m.config.FadeSeconds, nil)
	m.helpText = "" // glamour output depends on the theme
	m.saveState()
	return m.startFrames()
}

func (m *model) handleHelpToggle() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp && m.helpText == "" {
		m.helpText = loadHelpContent(m.dark, min(72, max(40, m.width-8)))
	}
	return m, nil
}

func (m *model) handleModalToggle() (tea.Model, tea.Cmd) {
	if m.modalOpen {
		m.modalOpen = false
		return m, nil
	}

	// Drop in from just below the top of the screen
	m.modalOpen = true
	m.modalPos = 0.06
	m.modalVel = 0
	m.spring = harmonica.NewSpring(
		harmonica.FPS(m.config.FPS),
		m.config.SpringFrequency,
		m.config.SpringDamping,
	)
	return m, m.startFrames()
}

func (m *model) handleNotesToggle() (tea.Model, tea.Cmd) {
	if m.demo == demoMenu {
		return m, nil
	}
	m.showNotes = !m.showNotes
	if m.showNotes && m.ready {
		m.notes.SetContent(m.demoNotes(m.demo))
		m.notes.GotoTop()
	}
	return m, nil
}

// handleEscape closes the topmost overlay, or navigates back
func (m *model) handleEscape() (tea.Model, tea.Cmd) {
	switch {
	case m.modalOpen:
		m.modalOpen = false
	case m.showHelp:
		m.showHelp = false
	case m.showNotes:
		m.showNotes = false
	default:
		m.goBack()
	}
	return m, nil
}

func (m *model) handleMenuSelect() (tea.Model, tea.Cmd) {
	if selected := m.menu.SelectedItem(); selected != nil {
		m.openDemo(selected.(demoItem).d)
	}
	return m, nil
}

func (m *model) handleFlip() (tea.Model, tea.Cmd) {
	if m.cardFlipping {
		return m, nil
	}
	m.cardFlipping = true
	m.cardFlip = motion.NewTimeline(time.Now(), m.config.FlipSeconds, ease.InOutQuad)
	return m, m.startFrames()
}

// handleMove advances the tracker and glides the box to the new offset
// over the computed duration
func (m *model) handleMove(dir motion.Direction) (tea.Model, tea.Cmd) {
	distance, speed := m.labValues()
	seconds := motion.Duration(distance, speed)

	m.labPos = m.tracker.Advance(dir, distance)
	m.lastMove = fmt.Sprintf("moved %s %s cells in %s",
		dir, formatNumber(distance), motion.FormatSeconds(seconds))

	m.boxFrom = m.boxPos
	m.boxTarget = m.labPos
	m.gliding = true
	m.glide = motion.NewTimeline(time.Now(), seconds, ease.OutQuad)
	return m, m.startFrames()
}

func (m *model) handleLoaderStart() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loadSeconds = motion.Duration(m.config.LoaderItems, m.config.LoaderRate)
	m.loading = true
	m.loadFrac = 0
	m.loadedIn = ""
	m.loadTL = motion.NewTimeline(time.Now(), m.loadSeconds, nil)
	return m, tea.Batch(m.spin.Tick, m.startFrames())
}
