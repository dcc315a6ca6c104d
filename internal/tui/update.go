package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/sysmon/internal/event"
)

// Init starts listening for events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		quit := m.engine.Handle(event.Event(msg))
		m.state = m.engine.State()
		if quit {
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	k, ok := KeyFromTea(msg)
	if !ok {
		return m, nil
	}

	select {
	case m.keys <- k:
	default:
		// Source is behind; drop the press rather than stall the UI.
	}
	return m, nil
}
