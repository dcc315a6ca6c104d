package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/sysmon/internal/engine"
	"github.com/haskel/sysmon/internal/event"
)

// keyBuffer is the capacity of the key feed between Update and the event
// source. Presses beyond it are dropped.
const keyBuffer = 16

// Model is the bubbletea model of the dashboard. Key presses are forwarded
// to the event source; events coming back are applied to the engine, and
// View renders the resulting engine state.
type Model struct {
	engine *engine.Engine
	keys   chan<- event.Key
	events <-chan event.Event

	state engine.State
	help  help.Model

	width  int
	height int
}

func NewModel(eng *engine.Engine, keys chan<- event.Key, events <-chan event.Event) Model {
	return Model{
		engine: eng,
		keys:   keys,
		events: events,
		state:  eng.State(),
		help:   help.New(),
	}
}

// State returns the engine state as of the last handled event.
func (m Model) State() engine.State {
	return m.state
}

type eventMsg event.Event

type eventsClosedMsg struct{}

// waitForEvent blocks on the next event from the source.
func waitForEvent(events <-chan event.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

// KeyFromTea converts a bubbletea key message into an engine key. Pasted
// input and multi-rune messages are rejected.
func KeyFromTea(msg tea.KeyMsg) (event.Key, bool) {
	if msg.Paste {
		return event.Key{}, false
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return event.Key{}, false
		}
		return event.Key{Rune: msg.Runes[0], Alt: msg.Alt}, true
	case tea.KeySpace:
		return event.Key{Rune: ' ', Alt: msg.Alt}, true
	}

	name := msg.Type.String()
	if name == "" {
		return event.Key{}, false
	}
	k := event.Key{Name: name, Alt: msg.Alt}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		k.Ctrl = true
		k.Name = rest
	}
	return k, true
}
