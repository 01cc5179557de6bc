package main

import (
	"math"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/harmonica"

	"github.com/zam-dot/flipdeck/motion"
)

// ============================================================================
// DEMO PAGES
// ============================================================================

// demo identifies one of the playground's pages
type demo int

const (
	demoMenu   demo = iota // the picker list
	demoCard               // flip card
	demoLab                // motion lab (duration calculator + glide box)
	demoLoader             // spinner + progress bar
)

func (d demo) String() string {
	switch d {
	case demoCard:
		return "card"
	case demoLab:
		return "lab"
	case demoLoader:
		return "loader"
	default:
		return "menu"
	}
}

func (d demo) title() string {
	switch d {
	case demoCard:
		return "Flip Card"
	case demoLab:
		return "Motion Lab"
	case demoLoader:
		return "Loader"
	default:
		return "Menu"
	}
}

// demoFromString restores a demo from its persisted name
func demoFromString(s string) demo {
	switch s {
	case "card":
		return demoCard
	case "lab":
		return demoLab
	case "loader":
		return demoLoader
	default:
		return demoMenu
	}
}

// demoItem adapts a demo to Bubble Tea's list component
type demoItem struct {
	d    demo
	desc string
}

func (i demoItem) Title() string       { return i.d.title() }
func (i demoItem) Description() string { return i.desc }
func (i demoItem) FilterValue() string { return i.d.title() }

// Which motion lab field is being edited
const (
	editNone = iota
	editDistance
	editSpeed
)

// ============================================================================
// MAIN APPLICATION MODEL
// ============================================================================

// model holds all the state for the playground
// This is the central data structure that Bubble Tea manages
type model struct {
	config    Config
	statePath string

	width  int
	height int
	ready  bool // first WindowSizeMsg seen

	demo    demo
	history []demo // previously open demos, for esc navigation
	menu    list.Model

	// Theme
	dark    bool
	pal     palette   // palette currently on screen (mid-blend while fading)
	theme   *themeSet // styles built from pal
	fading  bool
	fade    motion.Timeline
	fadeTo  palette
	fadeSrc palette

	// Flip card
	cardFlipped  bool // which face is at rest
	cardFlipping bool
	cardFlip     motion.Timeline
	cardProgress float64 // eased flip fraction, 0 at rest

	// Motion lab
	distanceInput textinput.Model
	speedInput    textinput.Model
	editing       int
	tracker       *motion.Tracker
	labPos        float64 // last position the tracker returned
	boxFrom       float64
	boxTarget     float64
	boxPos        float64 // rendered offset, interpolated while gliding
	gliding       bool
	glide         motion.Timeline
	lastMove      string

	// Loader
	spin        spinner.Model
	bar         progress.Model
	loading     bool
	loadTL      motion.Timeline
	loadFrac    float64
	loadSeconds float64
	loadedIn    string // completion line, empty until a load finishes

	// Modal
	modalOpen bool
	spring    harmonica.Spring
	modalPos  float64 // vertical placement fraction, drops from near 0 to 0.5
	modalVel  float64

	// Overlays
	showHelp  bool
	helpText  string // cached glamour render, invalidated on theme change
	showNotes bool
	notes     viewport.Model

	ticking bool // a frame tick is already in flight
	status  string
}

// animating reports whether anything on screen needs another frame
func (m *model) animating() bool {
	return m.cardFlipping || m.gliding || m.fading || m.loading || m.modalAnimating()
}

// modalAnimating reports whether the modal spring is still settling
func (m *model) modalAnimating() bool {
	if !m.modalOpen {
		return false
	}
	return math.Abs(m.modalPos-modalRest) > 0.002 || math.Abs(m.modalVel) > 0.002
}

// modalRest is the vertical placement fraction where the dialog settles
const modalRest = 0.5
