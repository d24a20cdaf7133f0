package cards

import (
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// VideoRenderer renders the video feed card, one video per row.
type VideoRenderer struct{}

// Kind implements widget.Renderer.
func (*VideoRenderer) Kind() string { return widget.TypeVideo }

// Render implements widget.Renderer.
func (*VideoRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.VideoPayload)
	if !ok {
		return errorCard("Video Error", "unexpected payload shape", state.Width, state.Focused)
	}

	if len(payload.Videos) == 0 {
		body := styles.Muted.Render("No videos queued")
		return frame(payload.Title, body, state.Width, state.Focused)
	}

	maxRows := BodyHeight(state.Card.Size) / 2 // each entry takes two lines
	if maxRows < 1 {
		maxRows = 1
	}

	var lines []string
	for i, video := range payload.Videos {
		if i >= maxRows {
			break
		}
		if video.Title == "" {
			continue
		}
		lines = append(lines, styles.Text.Render("▸ "+truncate(video.Title, state.Width-4)))

		meta := video.Channel
		if video.Duration != "" {
			if meta != "" {
				meta += " · "
			}
			meta += video.Duration
		}
		if meta != "" {
			lines = append(lines, "  "+styles.Muted.Render(truncate(meta, state.Width-4)))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("No videos queued"))
	}

	return frame(payload.Title, joinLines(lines), state.Width, state.Focused)
}
