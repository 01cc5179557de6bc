package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ============================================================================
// STYLING SYSTEM
// ============================================================================
// Lip Gloss is a CSS-inspired styling system for terminal applications.
// All colours live in a palette so the theme toggle can cross-fade every
// style at once: during the fade each palette entry is blended in HCL space
// (go-colorful) and the style set below is rebuilt per frame.

// palette is one theme's colour scheme
type palette struct {
	background colorful.Color // fills the status bar and card edges
	surface    colorful.Color // raised panels (cards, dialogs)
	text       colorful.Color // main body text
	muted      colorful.Color // hints and secondary text
	accent     colorful.Color // titles and highlights
	highlight  colorful.Color // the glide box and card back
	border     colorful.Color
}

// mustHex parses a colour literal known to be valid
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var darkPalette = palette{
	background: mustHex("#1a1b26"),
	surface:    mustHex("#24283b"),
	text:       mustHex("#c0caf5"),
	muted:      mustHex("#565f89"),
	accent:     mustHex("#bb9af7"),
	highlight:  mustHex("#7dcfff"),
	border:     mustHex("#3b4261"),
}

var lightPalette = palette{
	background: mustHex("#e1e2e7"),
	surface:    mustHex("#d5d6db"),
	text:       mustHex("#343b58"),
	muted:      mustHex("#8990b3"),
	accent:     mustHex("#5a4a78"),
	highlight:  mustHex("#166775"),
	border:     mustHex("#a8aecb"),
}

// themePalette returns the palette for the given theme flag
func themePalette(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// blend returns the palette fraction t of the way from p to other.
// HCL blending keeps the intermediate colours perceptually smooth,
// the same trick ledstrips and CSS transitions use for colour fades.
func (p palette) blend(other palette, t float64) palette {
	return palette{
		background: p.background.BlendHcl(other.background, t).Clamped(),
		surface:    p.surface.BlendHcl(other.surface, t).Clamped(),
		text:       p.text.BlendHcl(other.text, t).Clamped(),
		muted:      p.muted.BlendHcl(other.muted, t).Clamped(),
		accent:     p.accent.BlendHcl(other.accent, t).Clamped(),
		highlight:  p.highlight.BlendHcl(other.highlight, t).Clamped(),
		border:     p.border.BlendHcl(other.border, t).Clamped(),
	}
}

// hex converts a colorful colour into a lipgloss terminal colour
func hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// themeSet is every style the renderers use, built from a single palette
type themeSet struct {
	title      lipgloss.Style // page titles
	text       lipgloss.Style // main body text
	muted      lipgloss.Style // hints, key legends
	heading    lipgloss.Style // notes headings
	paragraph  lipgloss.Style // notes body
	blockquote lipgloss.Style // notes callouts

	cardFront lipgloss.Style // flip card, front face
	cardBack  lipgloss.Style // flip card, back face
	cardEdge  lipgloss.Style // the sliver visible mid-flip

	lane lipgloss.Style // motion lab track
	box  lipgloss.Style // motion lab glide box

	dialog lipgloss.Style // modal body
	status lipgloss.Style // bottom status bar
}

// newThemeSet builds the style set for a palette
func newThemeSet(p palette) *themeSet {
	return &themeSet{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(hex(p.accent)).
			MarginBottom(1),

		text:  lipgloss.NewStyle().Foreground(hex(p.text)),
		muted: lipgloss.NewStyle().Foreground(hex(p.muted)),

		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(hex(p.accent)),

		paragraph: lipgloss.NewStyle().
			Foreground(hex(p.text)).
			Width(64).
			MaxWidth(64),

		blockquote: lipgloss.NewStyle().
			Foreground(hex(p.muted)).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(hex(p.border)).
			PaddingLeft(1).
			Width(62).
			MaxWidth(62),

		cardFront: lipgloss.NewStyle().
			Foreground(hex(p.text)).
			Background(hex(p.surface)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hex(p.border)).
			Align(lipgloss.Center, lipgloss.Center).
			Height(7),

		cardBack: lipgloss.NewStyle().
			Foreground(hex(p.background)).
			Background(hex(p.highlight)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hex(p.border)).
			Align(lipgloss.Center, lipgloss.Center).
			Height(7),

		cardEdge: lipgloss.NewStyle().
			Background(hex(p.border)).
			Height(9),

		lane: lipgloss.NewStyle().Foreground(hex(p.border)),
		box:  lipgloss.NewStyle().Foreground(hex(p.highlight)).Bold(true),

		dialog: lipgloss.NewStyle().
			Foreground(hex(p.text)).
			Background(hex(p.surface)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hex(p.accent)).
			Padding(1, 3),

		status: lipgloss.NewStyle().
			Foreground(hex(p.muted)).
			Background(hex(p.surface)).
			Padding(0, 1),
	}
}
