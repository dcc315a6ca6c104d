package monitor

import (
	"github.com/shirou/gopsutil/v4/cpu"
)

// CPUPercents returns per-core usage since the previous call.
func (s *SystemSource) CPUPercents() ([]float64, error) {
	return cpu.Percent(0, true)
}
