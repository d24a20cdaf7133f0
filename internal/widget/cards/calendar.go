package cards

import (
	"time"

	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// CalendarRenderer renders the upcoming-events card. One event per line,
// with the ephemeral selection highlight driven by the TUI model.
type CalendarRenderer struct{}

// Kind implements widget.Renderer.
func (*CalendarRenderer) Kind() string { return widget.TypeCalendar }

// Render implements widget.Renderer.
func (*CalendarRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.CalendarPayload)
	if !ok {
		return errorCard("Calendar Error", "unexpected payload shape", state.Width, state.Focused)
	}

	if len(payload.Events) == 0 {
		body := styles.Muted.Render("Nothing scheduled")
		return frame(payload.Title, body, state.Width, state.Focused)
	}

	maxRows := BodyHeight(state.Card.Size)
	var lines []string
	for i, ev := range payload.Events {
		if len(lines) >= maxRows {
			break
		}
		line := formatEvent(ev, state.Width-2)
		if line == "" {
			continue
		}
		if i == state.SelectedDay {
			line = styles.SelectedItem.Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("Nothing scheduled"))
	}

	return frame(payload.Title, joinLines(lines), state.Width, state.Focused)
}

// formatEvent formats one calendar entry as "Mon 09:30  Standup · Zoom".
// Events with unparsable start times render without the time prefix
// rather than dropping out of the list.
func formatEvent(ev widget.CalendarEvent, maxWidth int) string {
	if ev.Title == "" {
		return ""
	}

	prefix := ""
	if ev.Start != "" {
		if start, err := time.Parse(time.RFC3339, ev.Start); err == nil {
			prefix = styles.HelpKey.Render(start.Format("Mon 15:04")) + "  "
		}
	}

	line := ev.Title
	if ev.Location != "" {
		line += " · " + ev.Location
	}
	return prefix + styles.Text.Render(truncate(line, maxWidth-10))
}
