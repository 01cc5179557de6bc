package main

import (
	"embed"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
)

// Each demo ships with a short explanation of the technique it shows.
// The notes are authored as plain HTML, like the web page this playground
// imitates, and extracted into styled terminal text with goquery.
// The key reference is authored as markdown and rendered with glamour.

//go:embed docs
var docsFS embed.FS

// demoNotes returns the styled notes for a demo, or a placeholder when
// none are bundled.
func (m *model) demoNotes(d demo) string {
	data, err := docsFS.ReadFile("docs/" + d.String() + ".html")
	if err != nil {
		return m.theme.muted.Render("No notes for this demo.")
	}
	return m.extractNotes(string(data))
}

// extractNotes converts an HTML note into terminal text using the current
// theme. Only the handful of elements the notes actually use are handled.
func (m *model) extractNotes(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Degrade to the raw markup rather than hiding the note
		return html
	}

	var content strings.Builder

	title := strings.TrimSpace(doc.Find("title").Text())
	if title != "" {
		content.WriteString(m.theme.title.Render(title))
		content.WriteString("\n\n")
	}

	doc.Find("h2, h3, p, li, blockquote").Each(func(i int, s *goquery.Selection) {
		// Collapse the whitespace that HTML authoring leaves behind
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}

		switch goquery.NodeName(s) {
		case "h2", "h3":
			content.WriteString(m.theme.heading.Render(text))
			content.WriteString("\n\n")
		case "li":
			content.WriteString("• " + m.theme.paragraph.Render(text))
			content.WriteString("\n")
		case "blockquote":
			content.WriteString(m.theme.blockquote.Render(text))
			content.WriteString("\n\n")
		default: // paragraphs
			content.WriteString(m.theme.paragraph.Render(text))
			content.WriteString("\n\n")
		}
	})

	return content.String()
}

// renderWithStyle renders markdown for the terminal, matching the theme flag
func renderWithStyle(markdown string, dark bool, width int) (string, error) {
	styleName := "light"
	if dark {
		styleName = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

// loadHelpContent renders the bundled key reference
func loadHelpContent(dark bool, width int) string {
	data, err := docsFS.ReadFile("docs/help.md")
	if err != nil {
		return "Help is unavailable."
	}
	styled, err := renderWithStyle(string(data), dark, width)
	if err != nil {
		return string(data)
	}
	return styled
}
