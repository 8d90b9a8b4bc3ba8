package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jask/adpulse/app"
	"github.com/jask/adpulse/core"
	"github.com/jask/adpulse/internal/campaign"
	"github.com/jask/adpulse/internal/config"
	"github.com/jask/adpulse/internal/logger"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:           "adpulse",
	Short:         "Terminal dashboard for ad campaign performance",
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), versionString())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/adpulse/config.toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.AddCommand(versionCmd, snapshotCmd)
}

func versionString() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("adpulse %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("adpulse %s\n", version)
}

// setup resolves configuration and the session logger shared by every
// subcommand.
func setup() (config.Config, *zap.Logger, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, nil, err
	}
	if configPath != "" {
		if err := os.Setenv("ADPULSE_CONFIG", configPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	m, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	log.Info("starting", zap.String("version", version), zap.String("start_path", cfg.UI.StartPath))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	p := tea.NewProgram(m, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	})
	if cfg.Data.Path != "" {
		g.Go(func() error {
			w := campaign.NewWatcher(cfg.Data.Path, log)
			// a broken watcher only costs live reload
			if err := w.Run(gctx, func() { p.Send(core.ReloadMsg{}) }); err != nil {
				log.Warn("snapshot watcher stopped", zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}
