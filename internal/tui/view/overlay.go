package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/tui/styles"
)

// OverlayState carries everything the loading overlay needs at render
// time. Spinner and Bar are pre-rendered by the model's bubbles
// components so this package stays a pure string producer.
type OverlayState struct {
	Progress *progress.State
	Spinner  string // current spinner frame, shown on the active stage
	Bar      string // rendered progress bar
	Width    int
	Show     bool
}

// RenderOverlay renders the six-stage loading overlay. Returns an empty
// string when hidden or when there is no progress state to show.
//
// Stages render in the fixed pipeline order regardless of the order the
// underlying events arrived in. The continue affordance appears only at
// 100%; it is a prompt, not a trigger. Advancing past the overlay
// always requires an explicit key press handled by the model.
func RenderOverlay(st OverlayState) string {
	if !st.Show || st.Progress == nil {
		return ""
	}
	p := st.Progress

	var b strings.Builder
	b.WriteString(styles.OverlayTitle.Render("Weaving your dashboard"))
	b.WriteString("\n")

	stageOrder := progress.Stages()
	for i, stage := range stageOrder {
		status := p.StatusOf(stage.ID)
		detail, _ := p.DetailOf(stage.ID)

		b.WriteString(RenderStageRow(stage, status, st.Spinner))
		b.WriteString("\n")

		// Detail block is indented under the connector column.
		detailBlock := RenderStageDetail(stage.ID, status, detail)
		connector := ""
		if i < len(stageOrder)-1 {
			connector = RenderConnector(p.StageReached(stageOrder[i+1].ID))
		}
		for _, line := range strings.Split(detailBlock, "\n") {
			b.WriteString(padConnector(connector))
			b.WriteString(line)
			b.WriteString("\n")
		}
		if i < len(stageOrder)-1 {
			b.WriteString(connector)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if st.Bar != "" {
		b.WriteString(st.Bar)
		b.WriteString("\n")
	}
	if p.Message != "" {
		b.WriteString(styles.Subtitle.Render(clip(p.Message, 64)))
		b.WriteString("\n")
	}

	if p.Complete() {
		b.WriteString("\n")
		prompt := styles.HelpKey.Render("enter") + styles.Muted.Render(" open your dashboard")
		if p.Completed && !p.Success {
			prompt = styles.ErrorMsg.Render("Generation failed") + "  " + prompt
		}
		b.WriteString(prompt)
		b.WriteString("\n")
	}

	box := styles.OverlayBox
	if st.Width > 0 {
		box = box.Width(min(st.Width-2, 72))
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

// padConnector pads detail lines so they align under the stage title,
// carrying the connector glyph in the margin when one is present.
func padConnector(connector string) string {
	if connector == "" {
		return "  "
	}
	return connector + " "
}

// Centered centers a block within the given terminal dimensions.
func Centered(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
