package monitor

import (
	"github.com/shirou/gopsutil/v4/mem"
)

// Memory returns RAM and swap usage in bytes.
func (s *SystemSource) Memory() (ByteUsage, ByteUsage, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return ByteUsage{}, ByteUsage{}, err
	}

	sw, err := mem.SwapMemory()
	if err != nil {
		return ByteUsage{}, ByteUsage{}, err
	}

	return ByteUsage{Used: v.Used, Total: v.Total},
		ByteUsage{Used: sw.Used, Total: sw.Total},
		nil
}
