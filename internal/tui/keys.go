package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the dashboard bindings for the help footer. The bindings
// themselves are interpreted by the engine.
type keyMap struct {
	SortCPU  key.Binding
	SortMem  key.Binding
	Snapshot key.Binding
	Record   key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SortCPU, k.SortMem, k.Snapshot, k.Record, k.Faster, k.Slower, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SortCPU, k.SortMem},
		{k.Snapshot, k.Record},
		{k.Faster, k.Slower, k.Quit},
	}
}

var keys = keyMap{
	SortCPU:  key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "sort cpu")),
	SortMem:  key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "sort mem")),
	Snapshot: key.NewBinding(key.WithKeys("l", "L"), key.WithHelp("l", "snapshot")),
	Record:   key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "record")),
	Faster:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "scan faster")),
	Slower:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "scan slower")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
