package monitor

import (
	"slices"
	"time"
)

// Source is the raw OS statistics provider consumed by the Collector.
// Every read is fallible; the Collector decides what to keep on error.
type Source interface {
	CPUPercents() ([]float64, error)
	Memory() (ByteUsage, ByteUsage, error)
	NetCounters() (NetworkTotals, error)
	Processes() ([]ProcessStat, error)
	Sensors() ([]SensorReading, error)
}

type CoreUsage struct {
	ID           int     `json:"id"`
	UsagePercent float64 `json:"usage_percent"`
}

type ByteUsage struct {
	Used  uint64 `json:"used"`
	Total uint64 `json:"total"`
}

// Percent returns used/total as a percentage, 0 when total is unknown.
func (u ByteUsage) Percent() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Total) * 100
}

type NetworkTotals struct {
	Received    uint64 `json:"received_bytes"`
	Transmitted uint64 `json:"transmitted_bytes"`
}

type DiskIOTotals struct {
	Read  uint64 `json:"read_bytes"`
	Write uint64 `json:"write_bytes"`
}

type ProcessInfo struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemBytes   uint64  `json:"mem_bytes"`
}

// ProcessStat is one process as reported by a Source, including the
// cumulative I/O counters that feed the host-wide disk total.
type ProcessStat struct {
	ProcessInfo
	ReadBytes  uint64
	WriteBytes uint64
}

type ThermalInfo struct {
	Label           string   `json:"label"`
	TempCelsius     float64  `json:"temp_celsius"`
	CriticalCelsius *float64 `json:"critical_celsius,omitempty"`
}

// SensorReading is a hardware-monitor component. A nil Temperature means the
// component did not report one.
type SensorReading struct {
	Label       string
	Temperature *float64
	Critical    *float64
}

// Snapshot is the aggregate produced by one Collect call.
type Snapshot struct {
	CPU         []CoreUsage   `json:"cpu"`
	RAM         ByteUsage     `json:"ram"`
	Swap        ByteUsage     `json:"swap"`
	Network     NetworkTotals `json:"network"`
	DiskIO      DiskIOTotals  `json:"disk_io"`
	Processes   []ProcessInfo `json:"processes"`
	Thermals    []ThermalInfo `json:"thermals"`
	Tick        uint32        `json:"tick"`
	Full        bool          `json:"full"`
	CollectedAt time.Time     `json:"collected_at"`
}

// AverageCPU returns the mean usage across all cores.
func (s *Snapshot) AverageCPU() float64 {
	if len(s.CPU) == 0 {
		return 0
	}
	var sum float64
	for _, c := range s.CPU {
		sum += c.UsagePercent
	}
	return sum / float64(len(s.CPU))
}

func (s *Snapshot) Clone() Snapshot {
	clone := *s
	clone.CPU = slices.Clone(s.CPU)
	clone.Processes = slices.Clone(s.Processes)
	clone.Thermals = cloneThermals(s.Thermals)
	return clone
}

func cloneThermals(in []ThermalInfo) []ThermalInfo {
	if in == nil {
		return nil
	}
	out := make([]ThermalInfo, len(in))
	for i, t := range in {
		out[i] = t
		if t.CriticalCelsius != nil {
			crit := *t.CriticalCelsius
			out[i].CriticalCelsius = &crit
		}
	}
	return out
}
