package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/tui/styles"
)

// Display caps for free-text fields in stage details. Cosmetic only; the
// underlying payload is never modified.
const (
	maxDetailText = 48
	maxTagText    = 16
)

// RenderStageDetail renders the detail block shown under a stage row.
// Dispatch is by status first, then by stage identifier:
//
//	pending              → waiting placeholder
//	active without data  → initializing placeholder
//	otherwise            → the stage's own renderer
func RenderStageDetail(id progress.StageID, status progress.Status, detail progress.Detail) string {
	if status == progress.StatusPending {
		return styles.StageDetail.Render("Waiting...")
	}
	if detail == nil {
		return styles.StageDetail.Render("Initializing...")
	}

	switch d := detail.(type) {
	case progress.DataDetail:
		return renderDataDetail(d)
	case progress.PatternsDetail:
		return renderPatternsDetail(d)
	case progress.ThemeDetail:
		return renderThemeDetail(d)
	case progress.WidgetsDetail:
		return renderWidgetsDetail(d)
	case progress.EnrichmentDetail:
		return renderEnrichmentDetail(d)
	case progress.BuildingDetail:
		return renderBuildingDetail(d)
	default:
		return styles.StageDetail.Render("Initializing...")
	}
}

func renderDataDetail(d progress.DataDetail) string {
	line := styles.StageDetail.Render(fmt.Sprintf("%s interactions analyzed", formatCount(d.Interactions)))
	if len(d.Platforms) == 0 {
		return line
	}
	return line + "\n" + renderTags(d.Platforms)
}

func renderPatternsDetail(d progress.PatternsDetail) string {
	var lines []string
	if d.Persona != "" {
		lines = append(lines, styles.StageDetail.Render("Persona: ")+styles.Text.Bold(true).Render(clip(d.Persona, maxDetailText)))
	}
	if len(d.Interests) > 0 {
		lines = append(lines, renderTags(d.Interests))
	}
	if d.Tone != "" || d.WritingStyle != "" {
		parts := make([]string, 0, 2)
		if d.Tone != "" {
			parts = append(parts, "tone: "+clip(d.Tone, maxTagText))
		}
		if d.WritingStyle != "" {
			parts = append(parts, "style: "+clip(d.WritingStyle, maxTagText))
		}
		lines = append(lines, styles.StageDetail.Render(strings.Join(parts, "  ")))
	}
	if len(lines) == 0 {
		return styles.StageDetail.Render("Reading between the lines...")
	}
	return strings.Join(lines, "\n")
}

func renderThemeDetail(d progress.ThemeDetail) string {
	var b strings.Builder
	b.WriteString(styles.StageDetail.Render(clip(d.Name, maxDetailText)))
	if len(d.Colors) > 0 {
		b.WriteString(" ")
		for _, hex := range d.Colors {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
		}
	}
	return b.String()
}

func renderWidgetsDetail(d progress.WidgetsDetail) string {
	line := styles.StageDetail.Render(fmt.Sprintf("%d widgets selected", len(d.Selected)))
	if len(d.Selected) == 0 {
		return line
	}
	return line + "\n" + renderTags(d.Selected)
}

func renderEnrichmentDetail(d progress.EnrichmentDetail) string {
	line := styles.StageDetail.Render(fmt.Sprintf("Calling %d services", len(d.APIs)))
	if len(d.APIs) == 0 {
		return line
	}
	return line + "\n" + renderTags(d.APIs)
}

func renderBuildingDetail(d progress.BuildingDetail) string {
	return styles.StageDetail.Render(fmt.Sprintf("%d of %d cards assembled", d.Cards, d.Widgets))
}

// renderTags renders a row of small pill tags.
func renderTags(items []string) string {
	tags := make([]string, 0, len(items))
	for _, item := range items {
		tags = append(tags, styles.StageTag.Render(clip(item, maxTagText)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tags...)
}

// clip truncates a string to max runes with an ellipsis.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// formatCount formats an integer with thousands separators, so 1200
// renders as "1,200".
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
