package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mglynnhenley/loom/internal/widget"
	"github.com/mglynnhenley/loom/internal/widget/cards"
)

var widgetsCmd = &cobra.Command{
	Use:   "widgets",
	Short: "List the registered widget types",
	Long: `List every widget type this build can render. Manifest cards with a
type outside this list are skipped at render time.`,
	RunE: runWidgets,
}

func init() {
	rootCmd.AddCommand(widgetsCmd)
}

func runWidgets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := widget.NewRegistry()
	mapRenderer := cards.RegisterAll(registry, cards.MapOptions{Token: cfg.Map.Token()})
	defer func() { _ = mapRenderer.ReleaseAll() }()

	for _, kind := range registry.Types() {
		cmd.Println(kind)
	}
	return nil
}
