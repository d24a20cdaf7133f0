// Package cards implements the renderers for the eight widget kinds the
// backend can select: article, calendar, content, map, stat, task, video
// and weather. Each renderer consumes its typed payload and produces a
// framed lipgloss card; no card depends on another.
package cards

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mglynnhenley/loom/internal/mapview"
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// MapOptions configures the map card's external provider.
type MapOptions struct {
	Provider mapview.Provider
	Token    string
}

// RegisterAll registers the full card set on a registry and returns the
// map renderer so the caller can release its handles on teardown.
// Registration order here is the order Types() will report.
func RegisterAll(reg *widget.Registry, mapOpts MapOptions) *MapRenderer {
	mapRenderer := NewMapRenderer(mapOpts)

	reg.Register(widget.TypeWeather, &WeatherRenderer{})
	reg.Register(widget.TypeCalendar, &CalendarRenderer{})
	reg.Register(widget.TypeVideo, &VideoRenderer{})
	reg.Register(widget.TypeMap, mapRenderer)
	reg.Register(widget.TypeTask, &TaskRenderer{})
	reg.Register(widget.TypeArticle, &ArticleRenderer{})
	reg.Register(widget.TypeStat, &StatRenderer{})
	reg.Register(widget.TypeContent, &ContentRenderer{})

	return mapRenderer
}

// BodyHeight returns the inner content height (rows) a card of the given
// size is laid out with.
func BodyHeight(size widget.Size) int {
	switch size {
	case widget.SizeSmall:
		return 4
	case widget.SizeLarge:
		return 12
	case widget.SizeWide:
		return 6
	default: // medium and anything unknown
		return 8
	}
}

// frame wraps a card body in the shared card chrome: a rounded border
// with the title on the first line. Focused cards get the primary border.
func frame(title, body string, width int, focused bool) string {
	borderColor := styles.BorderColor
	if focused {
		borderColor = styles.PrimaryColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width)

	var content string
	if title != "" {
		content = styles.CardTitle.Render(truncate(title, width-2)) + "\n" + body
	} else {
		content = body
	}
	return box.Render(content)
}

// errorCard renders the inline error text shown when a card cannot
// display its payload. Non-fatal: the rest of the dashboard still renders.
func errorCard(heading, message string, width int, focused bool) string {
	body := styles.ErrorMsg.Render(heading) + "\n" + styles.Muted.Render(truncate(message, width-2))
	return frame("", body, width, focused)
}

// joinLines joins card body lines with newlines.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// truncate truncates a string to max runes, adding ellipsis if needed.
func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
