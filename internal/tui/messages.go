package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/feed"
)

// feedEventMsg carries one progress event from the feed source into the
// bubbletea loop.
type feedEventMsg struct {
	event event.Event
}

// feedClosedMsg signals that the feed source's event channel has closed.
// Err is the terminal error from the source's Run loop, if any.
type feedClosedMsg struct {
	err error
}

// Commands

// waitForEvent returns a command that blocks on the feed source's event
// channel and delivers the next event. The Update loop re-issues it after
// every delivery, so exactly one reader waits on the channel at a time.
func waitForEvent(source feed.Source) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-source.Events()
		if !ok {
			return feedClosedMsg{}
		}
		return feedEventMsg{event: ev}
	}
}
