package main

// Demo navigation helpers

// openDemo switches pages and remembers where we came from
func (m *model) openDemo(d demo) {
	if d == m.demo {
		return
	}
	m.history = append(m.history, m.demo)
	m.demo = d
	m.showNotes = false
	m.status = ""
}

func (m *model) canGoBack() bool {
	return len(m.history) > 0
}

// goBack returns to the previously open demo
func (m *model) goBack() {
	if !m.canGoBack() {
		return
	}
	m.demo = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.showNotes = false
	m.status = ""
}
