package cards

import (
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// Fixed display slice for article summaries. Cosmetic, not contractual.
const articleSummaryLen = 80

// ArticleRenderer renders the reading list card.
type ArticleRenderer struct{}

// Kind implements widget.Renderer.
func (*ArticleRenderer) Kind() string { return widget.TypeArticle }

// Render implements widget.Renderer.
func (*ArticleRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.ArticlePayload)
	if !ok {
		return errorCard("Article Error", "unexpected payload shape", state.Width, state.Focused)
	}

	if len(payload.Articles) == 0 {
		body := styles.Muted.Render("Nothing to read")
		return frame(payload.Title, body, state.Width, state.Focused)
	}

	maxEntries := BodyHeight(state.Card.Size) / 3
	if maxEntries < 1 {
		maxEntries = 1
	}

	var lines []string
	for i, article := range payload.Articles {
		if i >= maxEntries {
			break
		}
		if article.Title == "" {
			continue
		}
		lines = append(lines, styles.Text.Bold(true).Render(truncate(article.Title, state.Width-2)))
		if article.Source != "" {
			lines = append(lines, styles.HelpKey.Render(truncate(article.Source, state.Width-2)))
		}
		if article.Summary != "" {
			summary := truncate(article.Summary, articleSummaryLen)
			lines = append(lines, styles.Muted.Render(truncate(summary, state.Width-2)))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted.Render("Nothing to read"))
	}

	return frame(payload.Title, joinLines(lines), state.Width, state.Focused)
}
