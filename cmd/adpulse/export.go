package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/adpulse/internal/campaign"
)

var (
	exportFormat    string
	exportOut       string
	exportPeriod    string
	exportPlatforms []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write KPI tables for a period as CSV or JSON",
	Long: `Write the totals, per-platform and per-campaign KPI tables of the
configured snapshot. Output goes to stdout unless --out is set.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&exportPeriod, "period", "current", "period to export: current or previous")
	exportCmd.Flags().StringSliceVar(&exportPlatforms, "platform", nil, "only these platforms (repeatable)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	snap, err := campaign.NewSource(cfg.Data.Path).Load(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}
	return writeExport(w, snap, exportFormat, exportPeriod, exportPlatforms)
}

func writeExport(w io.Writer, snap campaign.Snapshot, format, period string, platforms []string) error {
	var rows []campaign.Row
	switch period {
	case "current":
		rows = snap.Current
	case "previous":
		rows = snap.Previous
	default:
		return fmt.Errorf("unknown period %q (want current or previous)", period)
	}
	rep := campaign.BuildReport(rows, platforms...)
	switch format {
	case "csv":
		return rep.WriteCSV(w)
	case "json":
		return rep.WriteJSON(w)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}
}
