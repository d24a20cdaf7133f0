package cards

import (
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// StatRenderer renders a single-number stat card with an optional trend
// arrow next to the value.
type StatRenderer struct{}

// Kind implements widget.Renderer.
func (*StatRenderer) Kind() string { return widget.TypeStat }

// Render implements widget.Renderer.
func (*StatRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.StatPayload)
	if !ok {
		return errorCard("Stat Error", "unexpected payload shape", state.Width, state.Focused)
	}

	value := payload.Value
	switch payload.Trend {
	case "up":
		value += " " + styles.SuccessMsg.Render("↑")
	case "down":
		value += " " + styles.ErrorMsg.Render("↓")
	}

	var lines []string
	if payload.Value != "" {
		lines = append(lines, styles.CardValue.Render(value))
	}
	if payload.Subtitle != "" {
		lines = append(lines, styles.Muted.Render(truncate(payload.Subtitle, state.Width-2)))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("No data"))
	}

	return frame(payload.Title, joinLines(lines), state.Width, state.Focused)
}
