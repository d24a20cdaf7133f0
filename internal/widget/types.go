// Package widget provides the widget card model for the assembled
// dashboard: the manifest shape delivered by the backend's content
// assembly, the typed payload for each widget kind, and an explicit
// registry mapping widget type keys to renderers.
//
// The registry is a constructed object handed to the rendering root, not
// module-global state. Registration order and overwrite behavior are
// explicit and testable: last writer wins, silently, and Types() reflects
// registration order.
package widget

import "encoding/json"

// Widget type keys. The backend selects widgets by these strings; the
// registry maps them to renderers.
const (
	TypeArticle  = "article-card"
	TypeCalendar = "calendar-card"
	TypeContent  = "content-card"
	TypeMap      = "map-card"
	TypeStat     = "stat-card"
	TypeTask     = "task-card"
	TypeVideo    = "video-card"
	TypeWeather  = "weather-card"
)

// Size is the layout footprint a card requests in the dashboard grid.
type Size string

// Card sizes.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeWide   Size = "wide"
)

// Valid reports whether s is a known size.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeWide:
		return true
	}
	return false
}

// Card is one manifest entry: a widget instance the backend selected and
// populated for this dashboard. Data is decoded per-type by DecodePayload.
type Card struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Size Size            `json:"size"`
	Data json.RawMessage `json:"data"`
}

// Manifest is the widget list the backend assembled for one generation.
type Manifest struct {
	GenerationID string `json:"generation_id"`
	Cards        []Card `json:"cards"`
}

// RenderState holds everything a renderer needs at render time.
// Transient UI toggles (selected card, task checkboxes, calendar day) live
// in the TUI model and are passed through here per render; nothing in a
// renderer owns persistent state.
type RenderState struct {
	// Card is the manifest entry being rendered.
	Card Card

	// Payload is the decoded payload for the card. Nil when decoding
	// failed; renderers treat a shape mismatch as an inline error card.
	Payload Payload

	// Width is the inner content width available to the card, in cells.
	Width int

	// Focused indicates the card is selected in the grid.
	Focused bool

	// TaskDone overlays ephemeral checkbox toggles onto a task payload,
	// keyed by task index. Non-persisted, discarded with the view.
	TaskDone map[int]bool

	// SelectedDay is the hovered day index for the calendar card,
	// -1 when nothing is selected.
	SelectedDay int
}

// Renderer produces the visual output for one widget kind.
type Renderer interface {
	// Kind returns the widget type key this renderer handles.
	Kind() string

	// Render produces the card body for the given state. The returned
	// string may contain ANSI styling.
	Render(state *RenderState) string
}
