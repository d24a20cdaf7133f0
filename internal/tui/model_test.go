package tui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglynnhenley/loom/internal/config"
	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/widget"
)

// stubSource is a feed.Source backed by a buffered channel.
type stubSource struct {
	events   chan event.Event
	manifest *widget.Manifest
}

func newStubSource() *stubSource {
	return &stubSource{events: make(chan event.Event, 16)}
}

func (s *stubSource) Run(ctx context.Context) error      { return nil }
func (s *stubSource) Events() <-chan event.Event         { return s.events }
func (s *stubSource) Manifest() (*widget.Manifest, bool) { return s.manifest, s.manifest != nil }
func (s *stubSource) Close() error                       { return nil }

func newTestModel(t *testing.T) (Model, *stubSource) {
	t.Helper()
	source := newStubSource()
	m := NewModel(config.Default(), nil, source)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), source
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	updated, _ := m.Update(keyMsg(key))
	return updated.(Model)
}

func applyEvent(t *testing.T, m Model, ev event.Event) Model {
	t.Helper()
	updated, _ := m.Update(feedEventMsg{event: ev})
	return updated.(Model)
}

func taskManifest() *widget.Manifest {
	taskData, _ := json.Marshal(widget.TaskPayload{
		Title: "Today",
		Tasks: []widget.Task{{Label: "review notes"}, {Label: "water plants"}},
	})
	weatherData, _ := json.Marshal(widget.WeatherPayload{Title: "Weather", Value: "18°"})

	return &widget.Manifest{
		GenerationID: "gen-1",
		Cards: []widget.Card{
			{ID: "w-1", Type: widget.TypeWeather, Size: widget.SizeSmall, Data: weatherData},
			{ID: "t-1", Type: widget.TypeTask, Size: widget.SizeMedium, Data: taskData},
		},
	}
}

func TestCompletionGating(t *testing.T) {
	m, source := newTestModel(t)
	source.manifest = taskManifest()

	continued := 0
	m.SetContinueCallback(func() { continued++ })

	m = applyEvent(t, m, event.NewGenerationStartedEvent("gen-1"))
	m = applyEvent(t, m, event.NewProgressUpdatedEvent(3, 99, "nearly"))

	m = press(t, m, "enter")
	if m.screen != screenLoading {
		t.Fatal("enter advanced past the overlay before 100%")
	}
	if continued != 0 {
		t.Fatal("continue callback fired before completion")
	}

	// Completion alone must not advance or fire the callback.
	m = applyEvent(t, m, event.NewGenerationCompletedEvent("gen-1", true))
	if m.screen != screenLoading {
		t.Fatal("completion event auto-advanced the screen")
	}
	if continued != 0 {
		t.Fatal("continue callback fired without a key press")
	}

	m = press(t, m, "enter")
	if m.screen != screenDashboard {
		t.Fatal("enter at 100% did not open the dashboard")
	}
	if continued != 1 {
		t.Fatalf("continue callback fired %d times, want 1", continued)
	}
	if m.manifest == nil || len(m.manifest.Cards) != 2 {
		t.Fatal("manifest not pulled from the source on continue")
	}
}

func TestBlueprintToggle(t *testing.T) {
	m, _ := newTestModel(t)

	if m.showBlueprint {
		t.Fatal("blueprint should start disabled with default config")
	}
	m = press(t, m, "b")
	if !m.showBlueprint {
		t.Fatal("b did not enable the blueprint view")
	}
	m = press(t, m, "b")
	if m.showBlueprint {
		t.Fatal("b did not toggle the blueprint view off")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatal("? did not open help")
	}
	if !strings.Contains(m.View(), "Keys") {
		t.Error("help modal not rendered")
	}
	m = press(t, m, "esc")
	if m.showHelp {
		t.Fatal("esc did not close help")
	}
}

func TestTaskToggleKeys(t *testing.T) {
	m, source := newTestModel(t)
	source.manifest = taskManifest()

	m = applyEvent(t, m, event.NewGenerationStartedEvent("gen-1"))
	m = applyEvent(t, m, event.NewProgressUpdatedEvent(5, 100, ""))
	m = applyEvent(t, m, event.NewGenerationCompletedEvent("gen-1", true))
	m = press(t, m, "enter")

	// Focus the task card (second in the manifest) and toggle task 1.
	m = press(t, m, "tab")
	m = press(t, m, "1")
	if !m.taskDone["t-1"][0] {
		t.Fatal("pressing 1 on a focused task card did not toggle the task")
	}
	m = press(t, m, "1")
	if m.taskDone["t-1"][0] {
		t.Fatal("second press did not toggle the task back")
	}

	// Digits on a non-task card are ignored.
	m = press(t, m, "tab")
	m = press(t, m, "1")
	if m.taskDone["w-1"] != nil {
		t.Fatal("digit key toggled state on a non-task card")
	}
}

func TestDashboardRender(t *testing.T) {
	m, source := newTestModel(t)
	source.manifest = taskManifest()

	m = applyEvent(t, m, event.NewProgressUpdatedEvent(5, 100, ""))
	m = press(t, m, "enter")

	got := m.renderDashboard()
	if !strings.Contains(got, "Weather") {
		t.Error("dashboard missing weather card")
	}
	if !strings.Contains(got, "review notes") {
		t.Error("dashboard missing task card entries")
	}
}

func TestDashboardSkipsUnregisteredTypes(t *testing.T) {
	m, source := newTestModel(t)
	weatherData, _ := json.Marshal(widget.WeatherPayload{Title: "Weather", Value: "18°"})
	source.manifest = &widget.Manifest{
		GenerationID: "gen-1",
		Cards: []widget.Card{
			{ID: "x-1", Type: "hologram-card", Size: widget.SizeSmall, Data: weatherData},
			{ID: "w-1", Type: widget.TypeWeather, Size: widget.SizeSmall, Data: weatherData},
		},
	}

	m = applyEvent(t, m, event.NewProgressUpdatedEvent(5, 100, ""))
	m = press(t, m, "enter")

	got := m.renderDashboard()
	if !strings.Contains(got, "Weather") {
		t.Error("registered card missing from dashboard")
	}
	if strings.Contains(got, "hologram") {
		t.Error("unregistered card type leaked into the dashboard")
	}
}

func TestDecodeFailureRendersErrorCard(t *testing.T) {
	m, source := newTestModel(t)
	source.manifest = &widget.Manifest{
		GenerationID: "gen-1",
		Cards: []widget.Card{
			{ID: "w-1", Type: widget.TypeWeather, Size: widget.SizeSmall, Data: json.RawMessage(`{broken`)},
		},
	}

	m = applyEvent(t, m, event.NewProgressUpdatedEvent(5, 100, ""))
	m = press(t, m, "enter")

	got := m.renderDashboard()
	if !strings.Contains(got, "Error") {
		t.Errorf("bad payload should render an inline error card, got %q", got)
	}
}

func TestQuitReleasesNothingTwice(t *testing.T) {
	m, _ := newTestModel(t)

	if err := m.ReleaseResources(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := m.ReleaseResources(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestViewShowsContinueHintOnlyWhenComplete(t *testing.T) {
	m, _ := newTestModel(t)

	m = applyEvent(t, m, event.NewProgressUpdatedEvent(1, 40, "weaving"))
	if strings.Contains(m.View(), "enter continue") {
		t.Error("continue hint shown before completion")
	}

	m = applyEvent(t, m, event.NewProgressUpdatedEvent(5, 100, ""))
	if !strings.Contains(m.View(), "enter continue") {
		t.Error("continue hint missing at 100%")
	}
}
