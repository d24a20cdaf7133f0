package feed

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/widget"
)

// DefaultTick is the pause between scripted simulator events.
const DefaultTick = 350 * time.Millisecond

// Simulator replays a scripted generation timeline. It exists so the
// full loading experience can run without a backend (loom demo) and so
// tests can drive the TUI deterministically with a zero tick.
type Simulator struct {
	tick   time.Duration
	events chan event.Event
	stopCh chan struct{}

	mu       sync.Mutex
	manifest *widget.Manifest
	closed   bool
}

// NewSimulator creates a simulator. A non-positive tick runs the script
// with no delay between events.
func NewSimulator(tick time.Duration) *Simulator {
	return &Simulator{
		tick:   tick,
		events: make(chan event.Event),
		stopCh: make(chan struct{}),
	}
}

// Events implements Source.
func (s *Simulator) Events() <-chan event.Event { return s.events }

// Manifest implements Source. The manifest becomes available once the
// script reaches the building stage.
func (s *Simulator) Manifest() (*widget.Manifest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manifest, s.manifest != nil
}

// Close implements Source.
func (s *Simulator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.stopCh)
	}
	return nil
}

// Run implements Source. It walks the scripted timeline, pausing one
// tick between events, and closes the events channel when the script
// ends or the context is canceled.
func (s *Simulator) Run(ctx context.Context) error {
	defer close(s.events)

	generationID := uuid.NewString()

	for _, ev := range script(generationID) {
		if err := s.pause(ctx); err != nil {
			return err
		}

		// The manifest must be observable before the completion event
		// reaches consumers.
		if _, ok := ev.(event.GenerationCompletedEvent); ok {
			s.mu.Lock()
			s.manifest = DemoManifest(generationID)
			s.mu.Unlock()
		}

		select {
		case s.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		}
	}
	return nil
}

func (s *Simulator) pause(ctx context.Context) error {
	if s.tick <= 0 {
		return nil
	}
	timer := time.NewTimer(s.tick)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopCh:
		return nil
	}
}

// script builds the full event timeline for one simulated generation.
// Percent advances with each stage; stage details mirror what the real
// backend reports.
func script(generationID string) []event.Event {
	mustJSON := func(v any) json.RawMessage {
		b, _ := json.Marshal(v)
		return b
	}

	stageDetails := map[progress.StageID]json.RawMessage{
		progress.StageData: mustJSON(progress.DataDetail{
			Interactions: 1200,
			Platforms:    []string{"twitter", "github"},
		}),
		progress.StagePatterns: mustJSON(progress.PatternsDetail{
			Persona:      "The Builder",
			Interests:    []string{"distributed systems", "coffee", "cycling"},
			Tone:         "direct",
			WritingStyle: "concise",
		}),
		progress.StageTheme: mustJSON(progress.ThemeDetail{
			Name:   "midnight",
			Colors: []string{"#BB9AF7", "#9ECE6A", "#7AA2F7"},
		}),
		progress.StageWidgets: mustJSON(progress.WidgetsDetail{
			Selected: []string{"weather-card", "calendar-card", "task-card", "stat-card", "article-card", "content-card"},
		}),
		progress.StageEnrichment: mustJSON(progress.EnrichmentDetail{
			APIs: []string{"weather", "calendar", "news"},
		}),
		progress.StageBuilding: mustJSON(progress.BuildingDetail{
			Cards:   6,
			Widgets: 6,
		}),
	}

	stageMessages := map[progress.StageID]string{
		progress.StageData:       "Collecting your activity...",
		progress.StagePatterns:   "Detecting patterns...",
		progress.StageTheme:      "Generating your theme...",
		progress.StageWidgets:    "Selecting widgets...",
		progress.StageEnrichment: "Enriching content...",
		progress.StageBuilding:   "Building your dashboard...",
	}

	events := []event.Event{event.NewGenerationStartedEvent(generationID)}

	stages := progress.Stages()
	for i, stage := range stages {
		id := string(stage.ID)
		startPct := i * 100 / len(stages)
		endPct := (i + 1) * 100 / len(stages)

		events = append(events,
			event.NewStageStatusEvent(id, string(progress.StatusActive)),
			event.NewProgressUpdatedEvent(i, startPct, stageMessages[stage.ID]),
			event.NewStageDataEvent(id, stageDetails[stage.ID]),
			event.NewProgressUpdatedEvent(i, (startPct+endPct)/2, stageMessages[stage.ID]),
			event.NewStageStatusEvent(id, string(progress.StatusComplete)),
			event.NewProgressUpdatedEvent(i, endPct, stageMessages[stage.ID]),
		)
	}

	events = append(events, event.NewGenerationCompletedEvent(generationID, true))
	return events
}

// DemoManifest returns the widget manifest the simulated backend
// assembles. Payloads match the canonical per-kind schemas.
func DemoManifest(generationID string) *widget.Manifest {
	mustJSON := func(v any) json.RawMessage {
		b, _ := json.Marshal(v)
		return b
	}

	return &widget.Manifest{
		GenerationID: generationID,
		Cards: []widget.Card{
			{
				ID:   "demo-weather",
				Type: widget.TypeWeather,
				Size: widget.SizeSmall,
				Data: mustJSON(widget.WeatherPayload{
					Title:    "Weather",
					Value:    "18°C",
					Subtitle: "Partly cloudy",
					Location: "London",
				}),
			},
			{
				ID:   "demo-calendar",
				Type: widget.TypeCalendar,
				Size: widget.SizeMedium,
				Data: mustJSON(widget.CalendarPayload{
					Title: "Today",
					Events: []widget.CalendarEvent{
						{Title: "Standup", Start: "2026-08-29T09:30:00Z", Location: "Zoom"},
						{Title: "Design review", Start: "2026-08-29T14:00:00Z", Location: "Room 4"},
					},
				}),
			},
			{
				ID:   "demo-tasks",
				Type: widget.TypeTask,
				Size: widget.SizeMedium,
				Data: mustJSON(widget.TaskPayload{
					Title: "Tasks",
					Tasks: []widget.Task{
						{Label: "Review the quarterly report", Done: true},
						{Label: "Book dentist appointment"},
						{Label: "Water the plants"},
					},
				}),
			},
			{
				ID:   "demo-steps",
				Type: widget.TypeStat,
				Size: widget.SizeSmall,
				Data: mustJSON(widget.StatPayload{
					Title:    "Steps",
					Value:    "8,421",
					Subtitle: "vs. 7,900 yesterday",
					Trend:    "up",
				}),
			},
			{
				ID:   "demo-reading",
				Type: widget.TypeArticle,
				Size: widget.SizeLarge,
				Data: mustJSON(widget.ArticlePayload{
					Title: "Reading list",
					Articles: []widget.Article{
						{Title: "Go maps in action", Source: "go.dev", Summary: "How maps work under the hood."},
						{Title: "The local-first landscape", Source: "inkandswitch.com", Summary: "Where sync engines are heading."},
					},
				}),
			},
			{
				ID:   "demo-briefing",
				Type: widget.TypeContent,
				Size: widget.SizeWide,
				Data: mustJSON(widget.ContentPayload{
					Title: "Morning briefing",
					Body:  "Good morning! Two meetings today, rain expected after **16:00**.",
				}),
			},
		},
	}
}
