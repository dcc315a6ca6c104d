package monitor

import (
	"github.com/shirou/gopsutil/v4/process"
)

// Processes enumerates every process visible to the current user. Processes
// that exit mid-enumeration are dropped; fields that cannot be read (for
// example I/O counters of another user's process) are reported as zero.
func (s *SystemSource) Processes() ([]ProcessStat, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}

	live := make(map[int32]*process.Process, len(pids))
	stats := make([]ProcessStat, 0, len(pids))

	for _, pid := range pids {
		p, ok := s.procs[pid]
		if !ok {
			p, err = process.NewProcess(pid)
			if err != nil {
				continue
			}
		}

		name, err := p.Name()
		if err != nil {
			continue
		}
		live[pid] = p

		stat := ProcessStat{
			ProcessInfo: ProcessInfo{PID: pid, Name: name},
		}

		if pct, err := p.Percent(0); err == nil && pct > 0 {
			stat.CPUPercent = pct
		}
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			stat.MemBytes = mi.RSS
		}
		if io, err := p.IOCounters(); err == nil && io != nil {
			stat.ReadBytes = io.ReadBytes
			stat.WriteBytes = io.WriteBytes
		}

		stats = append(stats, stat)
	}

	s.procs = live
	return stats, nil
}
