package cards

import (
	"strings"
	"testing"

	"github.com/mglynnhenley/loom/internal/widget"
)

func newState(kind string, size widget.Size, payload widget.Payload) *widget.RenderState {
	return &widget.RenderState{
		Card:    widget.Card{ID: "card-1", Type: kind, Size: size},
		Payload: payload,
		Width:   40,
	}
}

func TestRegisterAll(t *testing.T) {
	reg := widget.NewRegistry()
	mapRenderer := RegisterAll(reg, MapOptions{})

	if mapRenderer == nil {
		t.Fatal("RegisterAll returned nil map renderer")
	}
	if reg.Len() != 8 {
		t.Errorf("Len() = %d, want 8", reg.Len())
	}

	wantOrder := []string{
		widget.TypeWeather,
		widget.TypeCalendar,
		widget.TypeVideo,
		widget.TypeMap,
		widget.TypeTask,
		widget.TypeArticle,
		widget.TypeStat,
		widget.TypeContent,
	}
	got := reg.Types()
	if len(got) != len(wantOrder) {
		t.Fatalf("Types() = %v, want %v", got, wantOrder)
	}
	for i, want := range wantOrder {
		if got[i] != want {
			t.Errorf("Types()[%d] = %q, want %q", i, got[i], want)
		}
	}

	for _, kind := range wantOrder {
		r, ok := reg.Get(kind)
		if !ok || r == nil {
			t.Errorf("Get(%q) missing renderer", kind)
			continue
		}
		if r.Kind() != kind {
			t.Errorf("renderer for %q reports Kind() = %q", kind, r.Kind())
		}
	}
}

func TestBodyHeight(t *testing.T) {
	tests := []struct {
		size widget.Size
		want int
	}{
		{widget.SizeSmall, 4},
		{widget.SizeMedium, 8},
		{widget.SizeLarge, 12},
		{widget.SizeWide, 6},
		{widget.Size("bogus"), 8},
	}
	for _, tt := range tests {
		if got := BodyHeight(tt.size); got != tt.want {
			t.Errorf("BodyHeight(%q) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestWeatherRenderer(t *testing.T) {
	r := &WeatherRenderer{}

	t.Run("renders value and location", func(t *testing.T) {
		out := r.Render(newState(widget.TypeWeather, widget.SizeSmall, widget.WeatherPayload{
			Title:    "Weather",
			Value:    "18°C",
			Subtitle: "Partly cloudy",
			Location: "London",
		}))
		for _, want := range []string{"Weather", "18°C", "Partly cloudy", "London"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("empty payload falls back", func(t *testing.T) {
		out := r.Render(newState(widget.TypeWeather, widget.SizeSmall, widget.WeatherPayload{}))
		if !strings.Contains(out, "No weather data") {
			t.Errorf("output missing fallback:\n%s", out)
		}
	})

	t.Run("wrong payload shape renders error card", func(t *testing.T) {
		out := r.Render(newState(widget.TypeWeather, widget.SizeSmall, widget.StatPayload{}))
		if !strings.Contains(out, "Weather Error") {
			t.Errorf("output missing error heading:\n%s", out)
		}
	})
}

func TestStatRenderer(t *testing.T) {
	r := &StatRenderer{}

	t.Run("trend arrows", func(t *testing.T) {
		up := r.Render(newState(widget.TypeStat, widget.SizeSmall, widget.StatPayload{
			Title: "Steps", Value: "8,421", Trend: "up",
		}))
		if !strings.Contains(up, "↑") {
			t.Errorf("up trend missing arrow:\n%s", up)
		}

		down := r.Render(newState(widget.TypeStat, widget.SizeSmall, widget.StatPayload{
			Title: "Screen time", Value: "3h 12m", Trend: "down",
		}))
		if !strings.Contains(down, "↓") {
			t.Errorf("down trend missing arrow:\n%s", down)
		}

		flat := r.Render(newState(widget.TypeStat, widget.SizeSmall, widget.StatPayload{
			Title: "Steps", Value: "8,421",
		}))
		if strings.Contains(flat, "↑") || strings.Contains(flat, "↓") {
			t.Errorf("no trend should not render an arrow:\n%s", flat)
		}
	})

	t.Run("subtitle rendered", func(t *testing.T) {
		out := r.Render(newState(widget.TypeStat, widget.SizeSmall, widget.StatPayload{
			Title: "Steps", Value: "8,421", Subtitle: "vs. 7,900 yesterday",
		}))
		if !strings.Contains(out, "vs. 7,900 yesterday") {
			t.Errorf("output missing subtitle:\n%s", out)
		}
	})
}

func TestCalendarRenderer(t *testing.T) {
	r := &CalendarRenderer{}

	t.Run("formats events", func(t *testing.T) {
		out := r.Render(newState(widget.TypeCalendar, widget.SizeMedium, widget.CalendarPayload{
			Title: "Today",
			Events: []widget.CalendarEvent{
				{Title: "Standup", Start: "2026-03-02T09:30:00Z", Location: "Zoom"},
			},
		}))
		for _, want := range []string{"Today", "Standup", "Zoom", "09:30"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("unparsable start keeps the event", func(t *testing.T) {
		out := r.Render(newState(widget.TypeCalendar, widget.SizeMedium, widget.CalendarPayload{
			Title:  "Today",
			Events: []widget.CalendarEvent{{Title: "Lunch", Start: "noon-ish"}},
		}))
		if !strings.Contains(out, "Lunch") {
			t.Errorf("event with bad start time dropped:\n%s", out)
		}
	})

	t.Run("no events", func(t *testing.T) {
		out := r.Render(newState(widget.TypeCalendar, widget.SizeMedium, widget.CalendarPayload{Title: "Today"}))
		if !strings.Contains(out, "Nothing scheduled") {
			t.Errorf("output missing fallback:\n%s", out)
		}
	})

	t.Run("row cap respects card size", func(t *testing.T) {
		events := make([]widget.CalendarEvent, 10)
		for i := range events {
			events[i] = widget.CalendarEvent{Title: "Event"}
		}
		out := r.Render(newState(widget.TypeCalendar, widget.SizeSmall, widget.CalendarPayload{
			Title: "Today", Events: events,
		}))
		if got := strings.Count(out, "Event"); got > 4 {
			t.Errorf("small card rendered %d events, want at most 4", got)
		}
	})
}

func TestTaskRenderer(t *testing.T) {
	r := &TaskRenderer{}
	payload := widget.TaskPayload{
		Title: "Tasks",
		Tasks: []widget.Task{
			{Label: "Water the plants", Done: true},
			{Label: "Book dentist"},
		},
	}

	t.Run("summary counts payload state", func(t *testing.T) {
		out := r.Render(newState(widget.TypeTask, widget.SizeMedium, payload))
		if !strings.Contains(out, "1/2 done") {
			t.Errorf("output missing summary:\n%s", out)
		}
		if !strings.Contains(out, "☑") || !strings.Contains(out, "☐") {
			t.Errorf("output missing checkboxes:\n%s", out)
		}
	})

	t.Run("overlay toggles both directions", func(t *testing.T) {
		state := newState(widget.TypeTask, widget.SizeMedium, payload)
		state.TaskDone = map[int]bool{0: false, 1: true}
		out := r.Render(state)
		if !strings.Contains(out, "1/2 done") {
			t.Errorf("flipped overlay should still count 1 done:\n%s", out)
		}

		state.TaskDone = map[int]bool{1: true}
		out = r.Render(state)
		if !strings.Contains(out, "2/2 done") {
			t.Errorf("overlay completing the list should count 2 done:\n%s", out)
		}
	})

	t.Run("no tasks", func(t *testing.T) {
		out := r.Render(newState(widget.TypeTask, widget.SizeMedium, widget.TaskPayload{Title: "Tasks"}))
		if !strings.Contains(out, "All clear") {
			t.Errorf("output missing fallback:\n%s", out)
		}
	})
}

func TestVideoRenderer(t *testing.T) {
	r := &VideoRenderer{}

	out := r.Render(newState(widget.TypeVideo, widget.SizeMedium, widget.VideoPayload{
		Title: "Up next",
		Videos: []widget.Video{
			{Title: "Sourdough basics", Channel: "Bread Lab", Duration: "12:30"},
		},
	}))
	for _, want := range []string{"Up next", "Sourdough basics", "Bread Lab", "12:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	empty := r.Render(newState(widget.TypeVideo, widget.SizeMedium, widget.VideoPayload{Title: "Up next"}))
	if !strings.Contains(empty, "No videos queued") {
		t.Errorf("output missing fallback:\n%s", empty)
	}
}

func TestArticleRenderer(t *testing.T) {
	r := &ArticleRenderer{}

	out := r.Render(newState(widget.TypeArticle, widget.SizeMedium, widget.ArticlePayload{
		Title: "Reading list",
		Articles: []widget.Article{
			{Title: "Go maps in action", Source: "go.dev", Summary: "How maps work under the hood."},
		},
	}))
	for _, want := range []string{"Reading list", "Go maps in action", "go.dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestContentRenderer(t *testing.T) {
	r := &ContentRenderer{}

	t.Run("renders markdown body", func(t *testing.T) {
		out := r.Render(newState(widget.TypeContent, widget.SizeLarge, widget.ContentPayload{
			Title: "Morning briefing",
			Body:  "Good morning! Here is **today** at a glance.",
		}))
		if !strings.Contains(out, "Morning briefing") {
			t.Errorf("output missing title:\n%s", out)
		}
		if !strings.Contains(out, "Good morning") {
			t.Errorf("output missing body text:\n%s", out)
		}
	})

	t.Run("empty body falls back", func(t *testing.T) {
		out := r.Render(newState(widget.TypeContent, widget.SizeLarge, widget.ContentPayload{
			Title: "Morning briefing",
			Body:  "  ",
		}))
		if !strings.Contains(out, "Nothing here yet") {
			t.Errorf("output missing fallback:\n%s", out)
		}
	})
}

func TestMapRenderer(t *testing.T) {
	payload := widget.MapPayload{
		Title:   "Nearby",
		Center:  widget.LatLng{Lat: 51.5, Lng: -0.12},
		Zoom:    12,
		Markers: []widget.Marker{{Label: "Coffee", Lat: 51.51, Lng: -0.11}},
	}

	t.Run("missing token renders inline error", func(t *testing.T) {
		r := NewMapRenderer(MapOptions{}) // ASCII provider, no token
		out := r.Render(newState(widget.TypeMap, widget.SizeMedium, payload))

		if !strings.Contains(out, "Map Error") {
			t.Errorf("output missing error heading:\n%s", out)
		}
		if !strings.Contains(out, "Mapbox token not configured") {
			t.Errorf("output missing user-facing message:\n%s", out)
		}
	})

	t.Run("error is sticky across renders", func(t *testing.T) {
		r := NewMapRenderer(MapOptions{})
		state := newState(widget.TypeMap, widget.SizeMedium, payload)
		r.Render(state)
		out := r.Render(state)
		if !strings.Contains(out, "Map Error") {
			t.Errorf("second render should still show the error:\n%s", out)
		}
	})

	t.Run("too small viewport stays loading", func(t *testing.T) {
		r := NewMapRenderer(MapOptions{})
		state := newState(widget.TypeMap, widget.SizeSmall, payload) // body height 4 < minimum 6
		out := r.Render(state)
		if !strings.Contains(out, "Loading map") {
			t.Errorf("undersized card should render loading text:\n%s", out)
		}
	})

	t.Run("renders map once acquired", func(t *testing.T) {
		r := NewMapRenderer(MapOptions{Token: "pk.test"})
		out := r.Render(newState(widget.TypeMap, widget.SizeMedium, payload))

		if !strings.Contains(out, "Nearby") {
			t.Errorf("output missing title:\n%s", out)
		}
		if !strings.Contains(out, "A Coffee") {
			t.Errorf("output missing marker legend:\n%s", out)
		}
	})

	t.Run("release all is idempotent", func(t *testing.T) {
		r := NewMapRenderer(MapOptions{Token: "pk.test"})
		r.Render(newState(widget.TypeMap, widget.SizeMedium, payload))

		if err := r.ReleaseAll(); err != nil {
			t.Fatalf("ReleaseAll() = %v", err)
		}
		if err := r.ReleaseAll(); err != nil {
			t.Fatalf("second ReleaseAll() = %v", err)
		}
	})

	t.Run("wrong payload shape renders error card", func(t *testing.T) {
		r := NewMapRenderer(MapOptions{Token: "pk.test"})
		out := r.Render(newState(widget.TypeMap, widget.SizeMedium, widget.TaskPayload{}))
		if !strings.Contains(out, "Map Error") {
			t.Errorf("output missing error heading:\n%s", out)
		}
	})
}
