package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/sysmon/internal/monitor"
)

const (
	gaugeWidth     = 30
	coreGaugeWidth = 10
	coreCellWidth  = 26
	minTableRows   = 3
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.renderTitleBar(),
		m.renderCPU(),
		m.renderMemory(),
		m.renderThermals(),
		m.renderThroughput(),
	}
	footer := []string{m.renderStatusBar(), m.help.View(keys)}

	used := lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, append(sections, footer...)...))
	sections = append(sections, m.renderProcesses(m.height-used))
	sections = append(sections, footer...)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("SYSMON")
	right := helpStyle.Render(fmt.Sprintf("sort: %s │ tick: %s", m.state.SortOrder, formatInterval(m.state.TickRate)))

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if spacing < 1 {
		spacing = 1
	}
	return title + strings.Repeat(" ", spacing) + right
}

func (m Model) renderCPU() string {
	snap := m.state.Snapshot
	avg := snap.AverageCPU()
	lines := []string{
		"  " + renderProgressBar(fmt.Sprintf("%-5s", "CPU"), avg, gaugeWidth, cpuColor(avg)),
	}

	perRow := max(1, (m.width-2)/coreCellWidth)
	var row []string
	for _, core := range snap.CPU {
		label := fmt.Sprintf("%3d", core.ID)
		cell := renderProgressBar(label, core.UsagePercent, coreGaugeWidth, cpuColor(core.UsagePercent))
		row = append(row, lipgloss.NewStyle().Width(coreCellWidth).Render(cell))
		if len(row) == perRow {
			lines = append(lines, "  "+lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		lines = append(lines, "  "+lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderMemory() string {
	ram, swap := m.state.Snapshot.RAM, m.state.Snapshot.Swap
	pct := ram.Percent()

	ramLine := fmt.Sprintf("  %s  %s",
		renderProgressBar(fmt.Sprintf("%-5s", "RAM"), pct, gaugeWidth, memoryColor(pct)),
		valueStyle.Render(fmt.Sprintf("%s / %s", formatBytes(ram.Used), formatBytes(ram.Total))),
	)
	swapLine := fmt.Sprintf("  %s %s",
		labelStyle.Render(fmt.Sprintf("%-5s", "Swap")),
		valueStyle.Render(fmt.Sprintf("%s / %s (%.1f%%)", formatBytes(swap.Used), formatBytes(swap.Total), swap.Percent())),
	)
	return ramLine + "\n" + swapLine
}

func (m Model) renderThermals() string {
	lines := []string{sectionHeaderStyle.Render("  Thermals")}

	thermals := m.state.Snapshot.Thermals
	if len(thermals) == 0 {
		lines = append(lines, helpStyle.Render("    No sensors found"))
		return strings.Join(lines, "\n")
	}

	for _, t := range thermals {
		lines = append(lines, "    "+formatThermal(t))
	}
	return strings.Join(lines, "\n")
}

func formatThermal(t monitor.ThermalInfo) string {
	label := t.Label
	if label == "" {
		label = "unknown"
	}

	reading := fmt.Sprintf("%.1f°C", t.TempCelsius)
	if t.CriticalCelsius != nil {
		reading += fmt.Sprintf(" /%.0f°C", *t.CriticalCelsius)
	}

	style := lipgloss.NewStyle().Foreground(thermalColor(t.TempCelsius))
	return fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-24s", label)), style.Render(reading))
}

func (m Model) renderThroughput() string {
	h := m.state.History
	width := max(10, m.width-30)

	lines := []string{
		sectionHeaderStyle.Render("  Network"),
		m.renderSeries("RX", h.NetRx, width, rxStyle),
		m.renderSeries("TX", h.NetTx, width, txStyle),
		sectionHeaderStyle.Render("  Disk I/O"),
		m.renderSeries("Read", h.DiskRead, width, rxStyle),
		m.renderSeries("Write", h.DiskWrite, width, txStyle),
	}
	return strings.Join(lines, "\n")
}

// renderSeries draws one cumulative counter as per-tick throughput.
func (m Model) renderSeries(label string, cumulative []uint64, width int, style lipgloss.Style) string {
	deltas := monitor.Deltas(cumulative)

	var latest uint64
	if len(deltas) > 0 {
		latest = deltas[len(deltas)-1]
	}

	return fmt.Sprintf("    %s %s %s",
		labelStyle.Render(fmt.Sprintf("%-5s", label)),
		valueStyle.Render(fmt.Sprintf("%10s", formatRate(latest, m.state.TickRate))),
		style.Render(renderSparkline(deltas, width)),
	)
}

func (m Model) renderProcesses(available int) string {
	header := sectionHeaderStyle.Render(fmt.Sprintf("  Processes (%d)", len(m.state.Processes)))

	// Header line plus the table's own header and border.
	rows := max(minTableRows, available-3)
	procs := m.state.Processes
	if len(procs) > rows {
		procs = procs[:rows]
	}

	nameWidth := max(16, m.width-8-8-12-10)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "PID", Width: 8},
			{Title: "Name", Width: nameWidth},
			{Title: "CPU%", Width: 8},
			{Title: "Memory", Width: 12},
		}),
		table.WithRows(processRows(procs)),
		table.WithFocused(false),
		table.WithHeight(len(procs)+1),
	)
	t.SetStyles(processTableStyles())

	return header + "\n" + t.View()
}

func processRows(procs []monitor.ProcessInfo) []table.Row {
	rows := make([]table.Row, len(procs))
	for i, p := range procs {
		rows[i] = table.Row{
			strconv.FormatInt(int64(p.PID), 10),
			p.Name,
			fmt.Sprintf("%.1f", p.CPUPercent),
			formatBytes(p.MemBytes),
		}
	}
	return rows
}

func (m Model) renderStatusBar() string {
	parts := []string{
		valueStyle.Render("Proc scan: " + formatInterval(m.state.ScanInterval())),
	}
	if m.state.Recording() {
		parts = append(parts, recordingStyle.Render("REC: "+m.state.LogPath))
	}
	if m.state.SnapshotPath != "" {
		parts = append(parts, snapshotStyle.Render("SNAP: "+m.state.SnapshotPath))
	}
	return "  " + strings.Join(parts, helpStyle.Render(" │ "))
}

func renderProgressBar(label string, percent float64, width int, color lipgloss.Color) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)

	filledBar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyBar := progressBarEmptyStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s [%s%s] %5.1f%%", labelStyle.Render(label), filledBar, emptyBar, percent)
}

// formatInterval renders whole and fractional seconds as "1.0s" and
// sub-second intervals as "500ms".
func formatInterval(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func formatBytes(n uint64) string {
	return datasize.ByteSize(n).HumanReadable()
}

// formatRate converts a per-tick byte count into bytes per second.
func formatRate(perTick uint64, tick time.Duration) string {
	if tick <= 0 {
		return formatBytes(perTick) + "/t"
	}
	perSecond := float64(perTick) / tick.Seconds()
	return formatBytes(uint64(perSecond)) + "/s"
}
