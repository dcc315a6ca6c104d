package monitor

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultThermalZoneDir is where the kernel exposes thermal_zone* entries.
const DefaultThermalZoneDir = "/sys/devices/virtual/thermal"

// ReadThermalZones scans dir for thermal_zone* entries, reading the "type"
// label and the millidegree "temp" of each. Zones whose temperature cannot be
// read or parsed are skipped; an unreadable label becomes "".
func ReadThermalZones(dir string) ([]ThermalInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "thermal_zone") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var thermals []ThermalInfo
	for _, name := range names {
		zone := filepath.Join(dir, name)

		raw, err := os.ReadFile(filepath.Join(zone, "temp"))
		if err != nil {
			continue
		}
		milli, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			continue
		}

		var label string
		if b, err := os.ReadFile(filepath.Join(zone, "type")); err == nil {
			label = strings.TrimSpace(string(b))
		}

		thermals = append(thermals, ThermalInfo{
			Label:       label,
			TempCelsius: milli / 1000,
		})
	}
	return thermals, nil
}
