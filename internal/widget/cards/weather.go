package cards

import (
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// WeatherRenderer renders the stat-style weather card: a large current
// value with location and condition lines beneath it.
type WeatherRenderer struct{}

// Kind implements widget.Renderer.
func (*WeatherRenderer) Kind() string { return widget.TypeWeather }

// Render implements widget.Renderer.
func (*WeatherRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.WeatherPayload)
	if !ok {
		return errorCard("Weather Error", "unexpected payload shape", state.Width, state.Focused)
	}

	var lines []string
	if payload.Value != "" {
		lines = append(lines, styles.CardValue.Render(payload.Value))
	}
	if payload.Subtitle != "" {
		lines = append(lines, styles.Text.Render(truncate(payload.Subtitle, state.Width-2)))
	}
	if payload.Location != "" {
		lines = append(lines, styles.Muted.Render(truncate(payload.Location, state.Width-2)))
	}
	if len(lines) == 0 {
		// Nothing usable in the payload; render an empty card body
		// rather than failing the whole dashboard.
		lines = append(lines, styles.Muted.Render("No weather data"))
	}

	return frame(payload.Title, joinLines(lines), state.Width, state.Focused)
}
