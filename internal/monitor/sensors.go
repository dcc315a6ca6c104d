package monitor

import (
	"math"

	"github.com/shirou/gopsutil/v4/sensors"
)

// Sensors queries hardware-monitor temperature components. gopsutil reports
// partial results alongside a warnings error; those results are kept.
func (s *SystemSource) Sensors() ([]SensorReading, error) {
	if !s.hwmon {
		return nil, nil
	}

	temps, err := sensors.SensorsTemperatures()
	if err != nil && len(temps) == 0 {
		return nil, err
	}

	readings := make([]SensorReading, 0, len(temps))
	for _, t := range temps {
		r := SensorReading{Label: t.SensorKey}
		if !math.IsNaN(t.Temperature) {
			temp := t.Temperature
			r.Temperature = &temp
		}
		if t.Critical > 0 {
			crit := t.Critical
			r.Critical = &crit
		}
		readings = append(readings, r)
	}
	return readings, nil
}
