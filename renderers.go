package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/flipdeck/motion"
)

// formatNumber renders a float in its shortest decimal form, the same rule
// motion.FormatSeconds uses for durations
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// View builds the complete UI representation based on current state
func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	bodyHeight := m.height - 1 // status bar takes the last line

	var content string
	switch {
	case m.modalOpen:
		content = m.renderModal(bodyHeight)
	case m.showHelp:
		content = m.renderHelp(bodyHeight)
	case m.showNotes:
		content = m.renderNotes()
	case m.demo == demoMenu:
		content = m.menu.View()
	case m.demo == demoCard:
		content = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.renderCard())
	case m.demo == demoLab:
		content = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.renderLab())
	case m.demo == demoLoader:
		content = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.renderLoader())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.statusBar())
}

// ============================================================================
// FLIP CARD
// ============================================================================

const cardWidth = 28

func (m *model) renderCard() string {
	// Fake the rotation: scale the width with the eased flip progress and
	// swap the visible face at the midpoint
	scale := 1.0
	front := !m.cardFlipped
	if m.cardFlipping {
		scale = math.Abs(1 - 2*m.cardProgress)
		if m.cardProgress >= 0.5 {
			front = m.cardFlipped
		}
	}

	w := int(math.Round(cardWidth * scale))
	if w < 1 {
		w = 1
	}

	var card string
	switch {
	case w < 6:
		// Too narrow for text: just the card's edge
		card = m.theme.cardEdge.Width(w).Render("")
	case front:
		card = m.theme.cardFront.Width(w).Render("✦\n\nflip card\n\nfront")
	default:
		card = m.theme.cardBack.Width(w).Render("✶\n\nflip card\n\nback")
	}

	// Keep the card centred as it narrows
	card = lipgloss.PlaceHorizontal(cardWidth+2, lipgloss.Center, card)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.title.Render("Flip Card"),
		card,
		"",
		m.theme.muted.Render("space: flip · n: notes · esc: back"),
	)
}

// ============================================================================
// MOTION LAB
// ============================================================================

func (m *model) renderLab() string {
	distance, speed := m.labValues()
	seconds := motion.Duration(distance, speed)

	form := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.theme.muted.Render("distance "),
		m.distanceInput.View(),
		m.theme.muted.Render("   speed "),
		m.speedInput.View(),
	)

	durationLine := m.theme.text.Render(fmt.Sprintf(
		"%s cells at %s cells/s takes %s",
		formatNumber(distance), formatNumber(speed), motion.FormatSeconds(seconds),
	))

	positionLine := m.theme.text.Render("position " + formatNumber(m.labPos))
	if m.lastMove != "" {
		positionLine += m.theme.muted.Render("  ·  " + m.lastMove)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.title.Render("Motion Lab"),
		form,
		durationLine,
		"",
		m.renderLane(),
		"",
		positionLine,
		m.theme.muted.Render("←/→: move · d/s: edit fields · n: notes · esc: back"),
	)
}

// renderLane draws the track with the glide box at its current offset.
// The tracker's position is unbounded; only the drawing is clamped.
func (m *model) renderLane() string {
	laneWidth := min(m.width-8, 61)
	if laneWidth < 21 {
		laneWidth = 21
	}

	lane := []rune(strings.Repeat("·", laneWidth))
	mid := laneWidth / 2
	lane[mid] = '┆' // the starting position

	col := mid + int(math.Round(m.boxPos))
	if col < 0 {
		col = 0
	}
	if col > laneWidth-1 {
		col = laneWidth - 1
	}

	return m.theme.lane.Render(string(lane[:col])) +
		m.theme.box.Render("█") +
		m.theme.lane.Render(string(lane[col+1:]))
}

// ============================================================================
// LOADER
// ============================================================================

func (m *model) renderLoader() string {
	expected := motion.Duration(m.config.LoaderItems, m.config.LoaderRate)
	info := m.theme.muted.Render(fmt.Sprintf(
		"%.0f items at %.0f items/s · expected %s",
		m.config.LoaderItems, m.config.LoaderRate, motion.FormatSeconds(expected),
	))

	var body string
	switch {
	case m.loading:
		body = lipgloss.JoinVertical(
			lipgloss.Center,
			m.spin.View()+m.theme.text.Render(" loading..."),
			"",
			m.bar.ViewAs(m.loadFrac),
		)
	case m.loadedIn != "":
		body = lipgloss.JoinVertical(
			lipgloss.Center,
			m.theme.text.Render("✓ "+m.loadedIn),
			"",
			m.bar.ViewAs(1),
		)
	default:
		body = m.theme.muted.Render("press l to start")
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.title.Render("Loader"),
		info,
		"",
		body,
		"",
		m.theme.muted.Render("l: start · n: notes · esc: back"),
	)
}

// ============================================================================
// OVERLAYS
// ============================================================================

// renderModal places the dialog at the spring's current vertical position,
// so it visibly drops in and bounces once before settling in the centre
func (m *model) renderModal(bodyHeight int) string {
	dialog := m.theme.dialog.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.title.Render("Modal"),
		m.theme.text.Render("A dialog that drops in on a spring."),
		"",
		m.theme.muted.Render("esc or m to close"),
	))

	pos := m.modalPos
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Position(pos), dialog)
}

func (m *model) renderHelp(bodyHeight int) string {
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.helpText)
}

func (m *model) renderNotes() string {
	header := m.theme.title.Render(m.demo.title() + " · notes")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.notes.View())
}

// ============================================================================
// STATUS BAR
// ============================================================================

func (m *model) statusBar() string {
	themeName := "light"
	if m.dark {
		themeName = "dark"
	}

	var hint string
	switch {
	case m.overlayOpen():
		hint = "esc: close"
	case m.demo == demoMenu:
		hint = "enter: open · t: theme · m: modal · ?: help · q: quit"
	default:
		hint = "t: theme · m: modal · ?: help · esc: back · q: quit"
	}

	line := fmt.Sprintf("flipdeck · %s theme | %s", themeName, hint)
	if m.status != "" {
		line = m.status + " | " + line
	}
	return m.theme.status.Width(m.width).Render(line)
}
