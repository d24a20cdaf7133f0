package tui

import (
	"fmt"
	"strings"

	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/tui/view"
)

// View renders the full application frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		switch m.screen {
		case screenDashboard:
			b.WriteString(m.renderDashboard())
		default:
			b.WriteString(m.renderLoading())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the top banner with the generation id when known.
func (m Model) renderHeader() string {
	title := "loom"
	if m.progress.GenerationID != "" {
		title += "  " + styles.Subtitle.Render(m.progress.GenerationID)
	}
	if m.errorMessage != "" {
		title += "  " + styles.ErrorMsg.Render(m.errorMessage)
	}
	return styles.Header.Width(m.width).Render(title)
}

// renderLoading renders the in-progress generation: the stage overlay or
// the blueprint log, centered in the content area.
func (m Model) renderLoading() string {
	contentHeight := m.height - styles.HeaderFooterReserved

	if m.showBlueprint {
		m.viewport.SetContent(view.RenderBlueprint(m.progress))
		m.viewport.GotoBottom()
		return m.viewport.View()
	}

	overlay := view.RenderOverlay(view.OverlayState{
		Progress: m.progress,
		Spinner:  m.spinner.View(),
		Bar:      m.bar.ViewAs(float64(m.progress.Percent) / 100),
		Width:    m.width,
		Show:     true,
	})
	return view.Centered(overlay, m.width, contentHeight)
}

// renderHelp renders the key reference modal.
func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"enter", "open dashboard (when generation is complete)"},
		{"b", "toggle blueprint visualization"},
		{"tab / l / h", "move card focus"},
		{"j / k", "move calendar day on a focused calendar card"},
		{"1-9", "toggle tasks on a focused task card"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keys"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", styles.HelpKey.Render(fmt.Sprintf("%-12s", row.key)), styles.Muted.Render(row.desc)))
	}
	return styles.ContentBox.Render(strings.TrimRight(b.String(), "\n"))
}

// renderHelpBar renders the bottom key hints for the current screen.
func (m Model) renderHelpBar() string {
	var hints []string
	switch {
	case m.showHelp:
		hints = []string{"esc close", "q quit"}
	case m.screen == screenDashboard:
		hints = []string{"tab focus", "1-9 tasks", "j/k day", "? help", "q quit"}
	case m.progress.Complete():
		hints = []string{"enter continue", "b blueprint", "? help", "q quit"}
	default:
		hints = []string{"b blueprint", "? help", "q quit"}
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		key, desc, found := strings.Cut(h, " ")
		if !found {
			parts = append(parts, h)
			continue
		}
		parts = append(parts, styles.HelpKey.Render(key)+" "+desc)
	}
	return styles.HelpBar.Render(strings.Join(parts, "  ·  "))
}
