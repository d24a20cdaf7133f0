package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mglynnhenley/loom/internal/feed"
	"github.com/mglynnhenley/loom/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a simulated dashboard generation",
	Long: `Run the full loading and dashboard experience against a simulated
progress feed, without a fabric backend. Useful for trying out themes
and widgets.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Int("tick", 0, "milliseconds between simulated events (0 uses feed.tick_ms)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg)
	defer func() { _ = log.Close() }()

	tick := cfg.Feed.Tick()
	if ms, _ := cmd.Flags().GetInt("tick"); ms > 0 {
		tick = time.Duration(ms) * time.Millisecond
	}

	source := feed.NewSimulator(tick)
	app := tui.New(cfg, log, source)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
