package cards

import (
	"fmt"

	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// TaskRenderer renders the task list card. The done state for each task
// combines the payload's Done flag with the ephemeral TaskDone overlay
// from the TUI model; toggles never persist beyond the view.
type TaskRenderer struct{}

// Kind implements widget.Renderer.
func (*TaskRenderer) Kind() string { return widget.TypeTask }

// Render implements widget.Renderer.
func (*TaskRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.TaskPayload)
	if !ok {
		return errorCard("Task Error", "unexpected payload shape", state.Width, state.Focused)
	}

	if len(payload.Tasks) == 0 {
		body := styles.Muted.Render("All clear")
		return frame(payload.Title, body, state.Width, state.Focused)
	}

	maxRows := BodyHeight(state.Card.Size)
	done := 0
	var lines []string
	for i, task := range payload.Tasks {
		checked := taskDone(task, i, state.TaskDone)
		if checked {
			done++
		}
		if len(lines) >= maxRows {
			continue // keep counting for the summary line
		}

		label := truncate(task.Label, state.Width-6)
		if checked {
			lines = append(lines, styles.CheckboxDone.Render("☑ ")+styles.Muted.Strikethrough(true).Render(label))
		} else {
			lines = append(lines, styles.CheckboxEmpty.Render("☐ ")+styles.Text.Render(label))
		}
	}

	summary := styles.Muted.Render(fmt.Sprintf("%d/%d done", done, len(payload.Tasks)))
	lines = append(lines, summary)

	return frame(payload.Title, joinLines(lines), state.Width, state.Focused)
}

// taskDone resolves a task's checked state, letting the ephemeral overlay
// flip the payload's value in either direction.
func taskDone(task widget.Task, index int, overlay map[int]bool) bool {
	if overlay != nil {
		if v, ok := overlay[index]; ok {
			return v
		}
	}
	return task.Done
}
