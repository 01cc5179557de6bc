package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// UserState is the handful of choices that survive a restart: the theme flag
// and which demo was open. Stored as a small JSON file in the home directory.
type UserState struct {
	DarkMode bool   `json:"dark_mode"`
	LastDemo string `json:"last_demo"`
}

// defaultStatePath returns ~/.flipdeck.json, or a file in the working
// directory when the home directory cannot be determined.
func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flipdeck.json"
	}
	return filepath.Join(home, ".flipdeck.json")
}

func loadState(filename string) (UserState, bool) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return UserState{}, false
	}
	var state UserState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Error loading state: %v", err)
		return UserState{}, false
	}
	return state, true
}

func (m *model) saveState() {
	state := UserState{
		DarkMode: m.dark,
		LastDemo: m.demo.String(),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Printf("Error saving state: %v", err)
		return
	}
	if err := os.WriteFile(m.statePath, data, 0644); err != nil {
		log.Printf("Error writing state file: %v", err)
	}
}
