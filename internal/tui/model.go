package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/feed"
	"github.com/mglynnhenley/loom/internal/logging"
	genprogress "github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
	"github.com/mglynnhenley/loom/internal/widget/cards"
)

// screen identifies which top-level view the model is showing.
type screen int

const (
	screenLoading screen = iota
	screenDashboard
)

// Model holds the TUI application state.
type Model struct {
	// Core components
	cfg      *config.Config
	log      *logging.Logger
	source   feed.Source
	progress *genprogress.State

	// Widget rendering
	registry    *widget.Registry
	mapRenderer *cards.MapRenderer
	manifest    *widget.Manifest

	// UI state
	screen        screen
	showBlueprint bool
	showHelp      bool
	width         int
	height        int
	ready         bool
	quitting      bool
	feedDone      bool
	errorMessage  string

	// Dashboard state. Task toggles and the selected calendar day are
	// ephemeral render state keyed by card id; discarded with the model.
	selected    int
	taskDone    map[string]map[int]bool
	selectedDay map[string]int

	// Components
	spinner  spinner.Model
	bar      progress.Model
	viewport viewport.Model

	// onContinue fires when the user confirms the completed generation.
	// Never invoked by reaching 100% alone; only by the key handler.
	onContinue func()
}

// NewModel creates a new TUI model wired to a feed source.
func NewModel(cfg *config.Config, log *logging.Logger, source feed.Source) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NopLogger()
	}

	registry := widget.NewRegistry()
	mapRenderer := cards.RegisterAll(registry, cards.MapOptions{
		Token: cfg.Map.Token(),
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.StatusActiveColor)

	bar := progress.New(progress.WithDefaultGradient())

	return Model{
		cfg:           cfg,
		log:           log,
		source:        source,
		progress:      genprogress.NewState(),
		registry:      registry,
		mapRenderer:   mapRenderer,
		showBlueprint: cfg.TUI.Blueprint,
		taskDone:      make(map[string]map[int]bool),
		selectedDay:   make(map[string]int),
		spinner:       sp,
		bar:           bar,
		viewport:      viewport.New(0, 0),
	}
}

// SetContinueCallback registers the callback invoked when the user
// confirms a completed generation from the loading overlay.
func (m *Model) SetContinueCallback(fn func()) {
	m.onContinue = fn
}

// toggleTask flips the ephemeral checkbox for a task card entry,
// creating the card's toggle map on first use.
func (m *Model) toggleTask(cardID string, idx int) {
	if m.taskDone[cardID] == nil {
		m.taskDone[cardID] = make(map[int]bool)
	}
	m.taskDone[cardID][idx] = !m.taskDone[cardID][idx]
}

// focusedCard returns the manifest card currently selected in the grid.
func (m Model) focusedCard() (widget.Card, bool) {
	if m.manifest == nil || len(m.manifest.Cards) == 0 {
		return widget.Card{}, false
	}
	if m.selected < 0 || m.selected >= len(m.manifest.Cards) {
		return widget.Card{}, false
	}
	return m.manifest.Cards[m.selected], true
}

// openDashboard switches to the dashboard screen. Called only from the
// key handler once the generation is complete.
func (m *Model) openDashboard() {
	if manifest, ok := m.source.Manifest(); ok {
		m.manifest = manifest
	}
	m.applyGeneratedTheme()
	m.screen = screenDashboard
	m.selected = 0
	if m.onContinue != nil {
		m.onContinue()
	}
	cardCount := 0
	if m.manifest != nil {
		cardCount = len(m.manifest.Cards)
	}
	m.log.Info("dashboard opened", "cards", cardCount)
}

// applyGeneratedTheme applies the pipeline's generated palette when the
// theme stage produced one and the user has not opted out.
func (m *Model) applyGeneratedTheme() {
	if !m.cfg.TUI.ApplyGeneratedTheme {
		return
	}
	detail, ok := m.progress.DetailOf(genprogress.StageTheme)
	if !ok {
		return
	}
	theme, ok := detail.(genprogress.ThemeDetail)
	if !ok || len(theme.Colors) == 0 {
		return
	}
	styles.ApplyPalette(styles.PaletteFromGenerated(theme.Name, theme.Colors))
	m.log.Info("generated theme applied", "theme", theme.Name, "colors", len(theme.Colors))
}

// ReleaseResources tears down every handle the model owns. Safe to call
// more than once; release is idempotent.
func (m Model) ReleaseResources() error {
	if m.mapRenderer == nil {
		return nil
	}
	return m.mapRenderer.ReleaseAll()
}
