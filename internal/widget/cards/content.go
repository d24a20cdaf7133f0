package cards

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// ContentRenderer renders free-form markdown content through glamour.
// Markdown that fails to render falls back to the raw body text.
type ContentRenderer struct{}

// Kind implements widget.Renderer.
func (*ContentRenderer) Kind() string { return widget.TypeContent }

// Render implements widget.Renderer.
func (*ContentRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.ContentPayload)
	if !ok {
		return errorCard("Content Error", "unexpected payload shape", state.Width, state.Focused)
	}

	if strings.TrimSpace(payload.Body) == "" {
		body := styles.Muted.Render("Nothing here yet")
		return frame(payload.Title, body, state.Width, state.Focused)
	}

	body := renderMarkdown(payload.Body, state.Width-4)

	// Cap the body at the card's layout height.
	maxRows := BodyHeight(state.Card.Size)
	lines := strings.Split(body, "\n")
	if len(lines) > maxRows {
		lines = append(lines[:maxRows-1], styles.Muted.Render("…"))
	}

	return frame(payload.Title, strings.Join(lines, "\n"), state.Width, state.Focused)
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw text when glamour cannot handle the input.
func renderMarkdown(markdown string, wrap int) string {
	if wrap < 10 {
		wrap = 10
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(out, "\n")
}
