package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorSuccess   = lipgloss.Color("82")  // Green
	colorWarning   = lipgloss.Color("226") // Yellow
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
	colorRecording = lipgloss.Color("205") // Pink
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	recordingStyle = lipgloss.NewStyle().
			Foreground(colorRecording).
			Bold(true)

	snapshotStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	rxStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	txStyle = lipgloss.NewStyle().Foreground(colorPrimary)
)

// cpuColor grades core and average CPU load.
func cpuColor(percent float64) lipgloss.Color {
	switch {
	case percent <= 40:
		return colorSuccess
	case percent <= 80:
		return colorWarning
	default:
		return colorDanger
	}
}

// memoryColor grades RAM usage.
func memoryColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 90:
		return colorDanger
	case percent >= 70:
		return colorWarning
	default:
		return colorSuccess
	}
}

// thermalColor grades a temperature in °C.
func thermalColor(celsius float64) lipgloss.Color {
	switch {
	case celsius > 85:
		return colorDanger
	case celsius > 65:
		return colorWarning
	default:
		return colorSuccess
	}
}

func processTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSecondary).
		BorderBottom(true).
		Bold(true).
		Foreground(colorPrimary)
	s.Cell = s.Cell.
		Foreground(lipgloss.Color("252"))
	// Nothing is selectable; render the cursor row like any other.
	s.Selected = s.Cell
	return s
}
