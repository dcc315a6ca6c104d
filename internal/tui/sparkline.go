package tui

import (
	"strings"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws the most recent width samples scaled against the
// largest of them, so an idle series stays on the bottom row.
func renderSparkline(data []uint64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var peak uint64
	for _, v := range data {
		peak = max(peak, v)
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	top := len(sparklineBlocks) - 1
	for _, v := range data {
		level := 0
		if peak > 0 {
			level = int(float64(v) / float64(peak) * float64(top))
		}
		sb.WriteRune(sparklineBlocks[min(max(level, 0), top)])
	}
	return sb.String()
}
