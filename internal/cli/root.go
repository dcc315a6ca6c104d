package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command; on its own it launches the dashboard.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Terminal system monitor",
	Long: `Sysmon is a terminal dashboard for the local host: per-core CPU, memory,
network and disk throughput, temperatures and the process table.

Keys: c/m sort by CPU or memory, l writes a CSV snapshot of the process
table, alt+l toggles continuous CSV logging, [ and ] change how often
processes are scanned, q quits.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	addConfigFlags(rootCmd.PersistentFlags())
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// IsJSON returns whether JSON output is enabled
func IsJSON() bool {
	return jsonOut
}
