package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// Init starts the spinner and begins draining the feed.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.source != nil {
		cmds = append(cmds, waitForEvent(m.source))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.bar.Width = min(msg.Width-10, 60)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - styles.HeaderFooterReserved
		return m, nil

	case feedEventMsg:
		return m.handleFeedEvent(msg.event)

	case feedClosedMsg:
		m.feedDone = true
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleFeedEvent folds one progress event into the model and re-arms
// the feed reader.
func (m Model) handleFeedEvent(ev event.Event) (tea.Model, tea.Cmd) {
	m.progress.Apply(ev)

	switch e := ev.(type) {
	case event.GenerationStartedEvent:
		m.log.Info("generation started", "generation_id", e.GenerationID)
	case event.GenerationCompletedEvent:
		// Completion changes nothing on screen beyond the continue
		// affordance; advancing is always an explicit key press.
		m.log.Info("generation completed", "success", e.Success)
	}

	return m, waitForEvent(m.source)
}

// handleKeypress processes keyboard input.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "b":
		if m.screen == screenLoading {
			m.showBlueprint = !m.showBlueprint
		}
		return m, nil

	case "enter":
		// Continue past the overlay, only once progress reached 100%.
		if m.screen == screenLoading && m.progress.Complete() {
			m.openDashboard()
		}
		return m, nil

	case "esc":
		if m.showHelp {
			m.showHelp = false
		}
		return m, nil
	}

	if m.screen == screenDashboard {
		return m.handleDashboardKeypress(msg)
	}
	return m, nil
}

// handleDashboardKeypress handles grid navigation and per-card toggles.
func (m Model) handleDashboardKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := 0
	if m.manifest != nil {
		count = len(m.manifest.Cards)
	}

	switch msg.String() {
	case "tab", "l", "right":
		if count > 0 {
			m.selected = (m.selected + 1) % count
		}
		return m, nil

	case "shift+tab", "h", "left":
		if count > 0 {
			m.selected = (m.selected - 1 + count) % count
		}
		return m, nil

	case "j", "down":
		if card, ok := m.focusedCard(); ok && card.Type == widget.TypeCalendar {
			m.selectedDay[card.ID]++
		}
		return m, nil

	case "k", "up":
		if card, ok := m.focusedCard(); ok && card.Type == widget.TypeCalendar {
			if m.selectedDay[card.ID] > 0 {
				m.selectedDay[card.ID]--
			}
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Toggle the nth checkbox on the focused task card.
		if card, ok := m.focusedCard(); ok && card.Type == widget.TypeTask {
			m.toggleTask(card.ID, int(msg.String()[0]-'1'))
		}
		return m, nil
	}

	return m, nil
}

// selectedDayFor returns the calendar selection for a card, -1 when the
// user has not moved the cursor yet.
func (m Model) selectedDayFor(card widget.Card) int {
	if day, ok := m.selectedDay[card.ID]; ok {
		return day
	}
	return -1
}
