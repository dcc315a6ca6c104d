package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/sysmon/internal/csvlog"
	"github.com/haskel/sysmon/internal/logger"
	"github.com/haskel/sysmon/internal/monitor"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write the process table to a CSV file",
	Long: `Collect the process table once and write it as snap-<timestamp>.csv in
the log directory, the same file the dashboard writes on 'l'.

Processes are sampled twice, one tick apart, so CPU percentages reflect
actual usage. The path of the written file is printed.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

type snapshotResult struct {
	Path      string `json:"path"`
	Processes int    `json:"processes"`
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := validConfig(GetConfigFile(), cmd.Flags())
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Open(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// Every collection must scan processes.
	collector := newCollector(cfg, 1, log)

	res, err := takeSnapshot(cmd.Context(), collector, cfg.Logs.Dir, cfg.TickRate())
	if err != nil {
		return err
	}
	log.Debug("snapshot written", "path", res.Path, "processes", res.Processes)

	return printSnapshot(cmd.OutOrStdout(), res)
}

func takeSnapshot(ctx context.Context, collector *monitor.Collector, dir string, tick time.Duration) (snapshotResult, error) {
	collector.Collect()

	select {
	case <-ctx.Done():
		return snapshotResult{}, ctx.Err()
	case <-time.After(tick):
	}

	snap := collector.Collect()
	path, err := csvlog.WriteSnapshot(dir, time.Now(), snap.Processes)
	if err != nil {
		return snapshotResult{}, fmt.Errorf("snapshot failed: %w", err)
	}
	return snapshotResult{Path: path, Processes: len(snap.Processes)}, nil
}

func printSnapshot(w io.Writer, res snapshotResult) error {
	if jsonOut {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, res.Path)
	return err
}
