package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/tui/styles"
)

// RenderStageRow renders the title line of a single pipeline stage: a
// status icon followed by the stage title. When the stage is active the
// icon is replaced by the caller's spinner frame so the overlay animates
// without this package depending on bubbletea.
func RenderStageRow(stage progress.Stage, status progress.Status, spinner string) string {
	icon := styles.StatusIcon(string(status))
	iconStyle := lipgloss.NewStyle().Foreground(styles.StatusColor(string(status)))

	var title string
	switch status {
	case progress.StatusActive:
		if spinner != "" {
			icon = spinner
			iconStyle = lipgloss.NewStyle()
		}
		title = styles.StageTitleActive.Render(stage.Title)
	case progress.StatusComplete:
		title = styles.StageTitleDone.Render(stage.Title)
	default:
		title = styles.StageTitlePending.Render(stage.Title)
	}

	return iconStyle.Render(icon) + " " + title
}

// RenderConnector renders the vertical connector between two consecutive
// stages. It is emphasized when the following stage is no longer pending,
// so the lit segment tracks how far the pipeline has advanced.
func RenderConnector(nextReached bool) string {
	if nextReached {
		return styles.StageConnectorLit.Render("│")
	}
	return styles.StageConnector.Render("│")
}
