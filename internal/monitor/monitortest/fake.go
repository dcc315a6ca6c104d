// Package monitortest provides a scriptable monitor.Source for tests.
package monitortest

import (
	"github.com/haskel/sysmon/internal/monitor"
)

// Source is a monitor.Source that returns canned values and counts calls.
// Setting an *Err field makes the corresponding read fail.
type Source struct {
	Cores     []float64
	RAM       monitor.ByteUsage
	Swap      monitor.ByteUsage
	Network   monitor.NetworkTotals
	Procs     []monitor.ProcessStat
	Readings  []monitor.SensorReading
	CPUErr    error
	MemErr    error
	NetErr    error
	ProcErr   error
	SensorErr error

	CPUCalls     int
	MemoryCalls  int
	NetCalls     int
	ProcessCalls int
	SensorCalls  int
}

func (s *Source) CPUPercents() ([]float64, error) {
	s.CPUCalls++
	if s.CPUErr != nil {
		return nil, s.CPUErr
	}
	return append([]float64(nil), s.Cores...), nil
}

func (s *Source) Memory() (monitor.ByteUsage, monitor.ByteUsage, error) {
	s.MemoryCalls++
	if s.MemErr != nil {
		return monitor.ByteUsage{}, monitor.ByteUsage{}, s.MemErr
	}
	return s.RAM, s.Swap, nil
}

func (s *Source) NetCounters() (monitor.NetworkTotals, error) {
	s.NetCalls++
	if s.NetErr != nil {
		return monitor.NetworkTotals{}, s.NetErr
	}
	return s.Network, nil
}

func (s *Source) Processes() ([]monitor.ProcessStat, error) {
	s.ProcessCalls++
	if s.ProcErr != nil {
		return nil, s.ProcErr
	}
	return append([]monitor.ProcessStat(nil), s.Procs...), nil
}

func (s *Source) Sensors() ([]monitor.SensorReading, error) {
	s.SensorCalls++
	if s.SensorErr != nil {
		return nil, s.SensorErr
	}
	return append([]monitor.SensorReading(nil), s.Readings...), nil
}

// Proc builds a ProcessStat without I/O counters.
func Proc(pid int32, name string, cpu float64, mem uint64) monitor.ProcessStat {
	return monitor.ProcessStat{
		ProcessInfo: monitor.ProcessInfo{PID: pid, Name: name, CPUPercent: cpu, MemBytes: mem},
	}
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
