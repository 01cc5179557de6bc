package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := ParseFlags()

	// The persisted theme flag and last open demo win over config defaults
	statePath := defaultStatePath()
	start := demoMenu
	if state, ok := loadState(statePath); ok {
		config.DarkMode = state.DarkMode
		start = demoFromString(state.LastDemo)
	}

	// tea.WithAltScreen() gives us a clean terminal canvas to work with
	p := tea.NewProgram(initialModel(config, statePath, start), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Error running TUI:", err)
	}
}
