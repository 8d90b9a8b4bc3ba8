package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/adpulse/app"
	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/campaign"
	"github.com/jask/adpulse/internal/config"
)

var (
	snapshotPath    string
	snapshotWidth   int
	snapshotHeight  int
	snapshotSidebar bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a single frame of a page to stdout",
	Long: `Render a single frame of a page to stdout without entering the
alternate screen. Useful for checking layouts and data files.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotPath, "path", "/", "page path to render")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 120, "frame width in cells")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 36, "frame height in rows")
	snapshotCmd.Flags().BoolVar(&snapshotSidebar, "sidebar", true, "render with the sidebar open")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	frame, err := renderFrame(cmd.Context(), cfg, snapshotPath, snapshotWidth, snapshotHeight, snapshotSidebar)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

// renderFrame drives the shell through the messages a live session would
// receive, loading the snapshot synchronously.
func renderFrame(ctx context.Context, cfg config.Config, path string, width, height int, sidebar bool) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	m, err := app.New(cfg, nil)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	snap, err := campaign.NewSource(cfg.Data.Path).Load(ctx)
	if err != nil {
		return "", err
	}

	var model tea.Model = m
	msgs := []tea.Msg{
		tea.WindowSizeMsg{Width: width, Height: height},
		core.DataLoadedMsg{Snapshot: snap},
		core.NavigateMsg{Path: path},
	}
	if m.Panel().IsOpen != sidebar {
		msgs = append(msgs, core.ToggleSidebarMsg{})
	}
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.View(), nil
}
