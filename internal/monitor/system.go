package monitor

import (
	"github.com/shirou/gopsutil/v4/process"
)

// SystemSource reads host statistics through gopsutil.
type SystemSource struct {
	hwmon bool

	// procs keeps gopsutil handles alive between enumerations so that
	// per-process CPU percentages are computed over the refresh interval
	// rather than the whole process lifetime.
	procs map[int32]*process.Process
}

func NewSystemSource(hwmon bool) *SystemSource {
	return &SystemSource{
		hwmon: hwmon,
		procs: make(map[int32]*process.Process),
	}
}
