package config

func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			TickRateMS:      250,
			HistoryCapacity: 120,
			ScanRate:        4,
		},
		Sensors: SensorsConfig{
			ThermalZoneDir: "/sys/devices/virtual/thermal",
			HWMon:          true,
		},
		Logs: LogsConfig{
			Dir: "/tmp/sysmon-tui",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
	}
}
