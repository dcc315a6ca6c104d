package config

import "time"

// LogDirEnv overrides Logs.Dir when set.
const LogDirEnv = "SYSMON_LOG_DIR"

type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
	Sensors   SensorsConfig   `yaml:"sensors" json:"sensors"`
	Logs      LogsConfig      `yaml:"logs" json:"logs"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

type DashboardConfig struct {
	TickRateMS      int `yaml:"tick_rate_ms" json:"tick_rate_ms"`
	HistoryCapacity int `yaml:"history_capacity" json:"history_capacity"`
	// ScanRate is the number of ticks between process and sensor scans.
	ScanRate int `yaml:"scan_rate" json:"scan_rate"`
}

type SensorsConfig struct {
	// ThermalZoneDir is the sysfs thermal root. Empty disables zone reading.
	ThermalZoneDir string `yaml:"thermal_zone_dir" json:"thermal_zone_dir"`
	// HWMon enables hardware-monitor temperature sensors.
	HWMon bool `yaml:"hwmon" json:"hwmon"`
}

// LogsConfig controls where CSV snapshots and recordings are written.
type LogsConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// LoggingConfig controls the diagnostic log. The terminal belongs to the
// dashboard, so with an empty File diagnostics are discarded.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file" json:"file"`
}

func (c *Config) TickRate() time.Duration {
	return time.Duration(c.Dashboard.TickRateMS) * time.Millisecond
}
