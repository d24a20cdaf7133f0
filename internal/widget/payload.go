package widget

import (
	"encoding/json"

	"github.com/mglynnhenley/loom/internal/errors"
)

// Payload is the tagged union of per-kind widget payloads. Each widget
// type has exactly one payload shape; decoding is discriminated by the
// type key so a malformed payload surfaces as an explicit error at the
// manifest boundary instead of a silent empty render.
type Payload interface {
	// Kind returns the widget type key this payload belongs to.
	Kind() string
}

// WeatherPayload is the stat-style weather display.
type WeatherPayload struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Location string `json:"location"`
}

// Kind implements Payload.
func (WeatherPayload) Kind() string { return TypeWeather }

// CalendarEvent is a single entry in a calendar payload.
type CalendarEvent struct {
	Title    string `json:"title"`
	Start    string `json:"start"` // RFC 3339
	End      string `json:"end"`
	Location string `json:"location"`
}

// CalendarPayload is the upcoming-events card.
type CalendarPayload struct {
	Title  string          `json:"title"`
	Events []CalendarEvent `json:"events"`
}

// Kind implements Payload.
func (CalendarPayload) Kind() string { return TypeCalendar }

// Video is a single entry in a video payload.
type Video struct {
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	Duration string `json:"duration"`
}

// VideoPayload is the video feed card.
type VideoPayload struct {
	Title  string  `json:"title"`
	Videos []Video `json:"videos"`
}

// Kind implements Payload.
func (VideoPayload) Kind() string { return TypeVideo }

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is a labeled point on the map card.
type Marker struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// MapPayload is the map card.
type MapPayload struct {
	Title   string   `json:"title"`
	Center  LatLng   `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
}

// Kind implements Payload.
func (MapPayload) Kind() string { return TypeMap }

// Task is a single entry in a task payload.
type Task struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// TaskPayload is the task list card.
type TaskPayload struct {
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// Kind implements Payload.
func (TaskPayload) Kind() string { return TypeTask }

// Article is a single entry in an article payload.
type Article struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
}

// ArticlePayload is the reading list card.
type ArticlePayload struct {
	Title    string    `json:"title"`
	Articles []Article `json:"articles"`
}

// Kind implements Payload.
func (ArticlePayload) Kind() string { return TypeArticle }

// StatPayload is a single-number stat card.
type StatPayload struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Trend    string `json:"trend"` // "up", "down" or empty
}

// Kind implements Payload.
func (StatPayload) Kind() string { return TypeStat }

// ContentPayload is a free-form markdown content card.
type ContentPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"` // Markdown
}

// Kind implements Payload.
func (ContentPayload) Kind() string { return TypeContent }

// DecodePayload decodes a raw widget payload into its typed shape,
// discriminated by widget type key. Unknown types and malformed JSON
// return a *errors.PayloadError; the dashboard renders those as inline
// error cards. Missing optional fields are not errors; cards degrade to
// empty sections for those.
func DecodePayload(kind string, raw json.RawMessage) (Payload, error) {
	if len(raw) == 0 {
		return nil, errors.NewPayloadError(kind, "empty payload", nil)
	}

	var (
		payload Payload
		err     error
	)
	switch kind {
	case TypeWeather:
		var p WeatherPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeCalendar:
		var p CalendarPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeVideo:
		var p VideoPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeMap:
		var p MapPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeTask:
		var p TaskPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeArticle:
		var p ArticlePayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeStat:
		var p StatPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	case TypeContent:
		var p ContentPayload
		err = json.Unmarshal(raw, &p)
		payload = p
	default:
		return nil, errors.NewPayloadError(kind, "unknown widget type", errors.ErrUnknownWidgetType)
	}
	if err != nil {
		return nil, errors.NewPayloadError(kind, "malformed widget payload", err)
	}
	return payload, nil
}

// DecodeManifest decodes a widget manifest from raw JSON.
func DecodeManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.NewPayloadError("manifest", "malformed widget manifest", err)
	}
	return &m, nil
}
