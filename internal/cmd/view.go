package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/feed"
	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/tui"
	"github.com/mglynnhenley/loom/internal/tui/view"
	"github.com/mglynnhenley/loom/internal/widget"
	"github.com/mglynnhenley/loom/internal/widget/cards"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Render a generation from its progress snapshot",
	Long: `Render the state of a dashboard generation from the snapshot file the
fabric backend writes. With --follow the snapshot is watched for changes
and the full interactive TUI runs; without it the current state renders
once to stdout.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("snapshot", "", "snapshot file path (default feed.snapshot_path)")
	viewCmd.Flags().BoolP("follow", "f", false, "watch the snapshot for changes")
	viewCmd.Flags().BoolP("blueprint", "b", false, "use the blueprint visualization")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.Feed.SnapshotPath
	if flagPath, _ := cmd.Flags().GetString("snapshot"); flagPath != "" {
		path = flagPath
	}
	if blueprint, _ := cmd.Flags().GetBool("blueprint"); blueprint {
		cfg.TUI.Blueprint = true
	}

	follow, _ := cmd.Flags().GetBool("follow")
	if !follow {
		follow = cfg.Feed.Follow
	}

	if follow {
		log := newLogger(cfg)
		defer func() { _ = log.Close() }()

		source, err := feed.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("failed to watch snapshot: %w", err)
		}
		app := tui.New(cfg, log, source)
		if err := app.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}

	return renderOnce(cmd, cfg, path)
}

// renderOnce prints the snapshot's current state to stdout: the finished
// dashboard when the generation completed, the progress visualization
// otherwise.
func renderOnce(cmd *cobra.Command, cfg *config.Config, path string) error {
	snapshot, err := feed.ReadSnapshot(path)
	if err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("no snapshot at %s; has the backend started a generation?", path)
		}
		return err
	}

	state := progress.NewState()
	for _, ev := range snapshot.Diff(nil) {
		state.Apply(ev)
	}

	if snapshot.Completed && snapshot.Widgets != nil {
		cmd.Println(renderStaticDashboard(cfg, snapshot.Widgets))
		return nil
	}

	if cfg.TUI.Blueprint {
		cmd.Println(view.RenderBlueprint(state))
		return nil
	}
	cmd.Println(view.RenderOverlay(view.OverlayState{
		Progress: state,
		Show:     true,
		Width:    80,
	}))
	return nil
}

// renderStaticDashboard lays the manifest out once without the
// interactive model. Map handles are released before returning.
func renderStaticDashboard(cfg *config.Config, manifest *widget.Manifest) string {
	registry := widget.NewRegistry()
	mapRenderer := cards.RegisterAll(registry, cards.MapOptions{Token: cfg.Map.Token()})
	defer func() { _ = mapRenderer.ReleaseAll() }()

	const width = 100
	columns := view.GridColumns(width, cfg.TUI.MinCardWidth)

	items := make([]view.GridItem, 0, len(manifest.Cards))
	for _, card := range manifest.Cards {
		renderer, ok := registry.Get(card.Type)
		if !ok {
			continue
		}
		state := &widget.RenderState{
			Card:        card,
			Width:       view.CardWidth(card.Size, width, columns),
			SelectedDay: -1,
		}
		if payload, err := widget.DecodePayload(card.Type, card.Data); err == nil {
			state.Payload = payload
		}
		items = append(items, view.GridItem{View: renderer.Render(state), Size: card.Size})
	}
	return view.RenderGrid(items, columns)
}
