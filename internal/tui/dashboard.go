package tui

import (
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/tui/view"
	"github.com/mglynnhenley/loom/internal/widget"
)

// renderDashboard renders the assembled widget grid from the manifest.
// Cards with no registered renderer are skipped entirely; cards whose
// payload fails to decode render an inline error card so one bad payload
// never takes down the dashboard.
func (m Model) renderDashboard() string {
	if m.manifest == nil || len(m.manifest.Cards) == 0 {
		return styles.Muted.Render("No widgets in this dashboard yet.")
	}

	columns := view.GridColumns(m.width, m.cfg.TUI.MinCardWidth)

	items := make([]view.GridItem, 0, len(m.manifest.Cards))
	for i, card := range m.manifest.Cards {
		renderer, ok := m.registry.Get(card.Type)
		if !ok {
			m.log.Warn("no renderer registered", "widget_type", card.Type, "card_id", card.ID)
			continue
		}

		state := &widget.RenderState{
			Card:        card,
			Width:       view.CardWidth(card.Size, m.width, columns),
			Focused:     i == m.selected,
			TaskDone:    m.taskDone[card.ID],
			SelectedDay: m.selectedDayFor(card),
		}

		payload, err := widget.DecodePayload(card.Type, card.Data)
		if err != nil {
			m.log.Warn("payload decode failed", "card_id", card.ID, "error", err)
		} else {
			state.Payload = payload
		}

		items = append(items, view.GridItem{
			View: renderer.Render(state),
			Size: card.Size,
		})
	}

	if len(items) == 0 {
		return styles.Muted.Render("No renderable widgets in this dashboard.")
	}
	return view.RenderGrid(items, columns)
}
