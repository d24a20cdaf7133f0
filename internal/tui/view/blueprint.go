package view

import (
	"fmt"
	"strings"

	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/tui/styles"
)

// LogEntry is one row of the blueprint log table. An entry contributes
// its Line once percent reaches Threshold. DoneLine is the phrasing the
// entry flips to when a later entry names it via Supersedes; an empty
// DoneLine means the phrasing never changes. Supersedes is the index of
// the earlier entry this one completes, or -1.
type LogEntry struct {
	Threshold  int
	Line       string
	DoneLine   string
	Supersedes int
}

// ServiceCall is one named backend call row. It renders nothing below
// CallAt, "calling" between CallAt and DoneAt, and "complete" at DoneAt.
type ServiceCall struct {
	Name   string
	CallAt int
	DoneAt int
}

// personaSlot marks where the detected persona is spliced into a line.
const personaSlot = "{persona}"

// blueprintLog is the ordered threshold table the log is derived from.
// Thresholds are non-decreasing; derivation walks the table once, so the
// log can only grow as percent grows and a completed phrasing can never
// revert. Entries that announce work carry a DoneLine and are completed
// by the entry that starts the next phase.
var blueprintLog = []LogEntry{
	{Threshold: 0, Line: "$ loom weave --profile current-user", Supersedes: -1},
	{Threshold: 2, Line: "Connecting to fabric orchestrator ...", DoneLine: "Connected to fabric orchestrator", Supersedes: -1},
	{Threshold: 6, Line: "Collecting activity across platforms ...", DoneLine: "Activity collected", Supersedes: 1},
	{Threshold: 18, Line: "Analyzing interaction patterns ...", DoneLine: "Patterns extracted", Supersedes: 2},
	{Threshold: 34, Line: "Persona identified: " + personaSlot, Supersedes: 3},
	{Threshold: 38, Line: "Generating color theme ...", DoneLine: "Theme generated", Supersedes: -1},
	{Threshold: 52, Line: "Selecting widgets for your dashboard ...", DoneLine: "Widgets selected", Supersedes: 5},
	{Threshold: 66, Line: "Enriching cards from connected services ...", DoneLine: "Cards enriched", Supersedes: 6},
	{Threshold: 86, Line: "Assembling dashboard ...", DoneLine: "Dashboard assembled", Supersedes: 7},
	{Threshold: 100, Line: "Done. Press enter to open your dashboard.", Supersedes: 8},
}

// blueprintCalls is the fixed service-call table.
var blueprintCalls = []ServiceCall{
	{Name: "social.fetch", CallAt: 6, DoneAt: 18},
	{Name: "patterns.analyze", CallAt: 18, DoneAt: 34},
	{Name: "theme.generate", CallAt: 38, DoneAt: 52},
	{Name: "widgets.select", CallAt: 52, DoneAt: 66},
	{Name: "content.enrich", CallAt: 66, DoneAt: 86},
	{Name: "dashboard.build", CallAt: 86, DoneAt: 100},
}

// BlueprintLog derives the visible log lines for a percent value. Pure
// and idempotent: the same percent always yields the same lines, and a
// higher percent only appends or completes, never removes.
func BlueprintLog(percent int, persona string) []string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	superseded := make([]bool, len(blueprintLog))
	for _, e := range blueprintLog {
		if percent >= e.Threshold && e.Supersedes >= 0 && e.Supersedes < len(blueprintLog) {
			superseded[e.Supersedes] = true
		}
	}

	if persona == "" {
		persona = "still emerging"
	}

	var lines []string
	for i, e := range blueprintLog {
		if percent < e.Threshold {
			break
		}
		line := e.Line
		if superseded[i] && e.DoneLine != "" {
			line = e.DoneLine
		}
		lines = append(lines, strings.ReplaceAll(line, personaSlot, clip(persona, maxDetailText)))
	}
	return lines
}

// CallRow is a derived service-call row: the call has started, and Done
// reports whether it has completed.
type CallRow struct {
	Name string
	Done bool
}

// BlueprintCalls derives the visible service-call rows for a percent
// value. Calls that have not started yet are omitted.
func BlueprintCalls(percent int) []CallRow {
	var rows []CallRow
	for _, c := range blueprintCalls {
		if percent < c.CallAt {
			continue
		}
		rows = append(rows, CallRow{Name: c.Name, Done: percent >= c.DoneAt})
	}
	return rows
}

// RenderBlueprint renders the alternate terminal-log visualization of a
// running generation. The log scroll itself (viewport) is owned by the
// model; this returns the full content to feed it.
func RenderBlueprint(p *progress.State) string {
	if p == nil {
		return ""
	}

	persona := ""
	if detail, ok := p.DetailOf(progress.StagePatterns); ok {
		if patterns, ok := detail.(progress.PatternsDetail); ok {
			persona = patterns.Persona
		}
	}

	var b strings.Builder
	b.WriteString(styles.OverlayTitle.Render("Blueprint"))
	b.WriteString("\n")

	lines := BlueprintLog(p.Percent, persona)
	for i, line := range lines {
		// Every line except the newest reads as settled output.
		if i < len(lines)-1 || p.Percent == 100 {
			b.WriteString(styles.BlueprintDone.Render(line))
		} else {
			b.WriteString(styles.BlueprintLine.Render(line))
		}
		b.WriteString("\n")
	}

	calls := BlueprintCalls(p.Percent)
	if len(calls) > 0 {
		b.WriteString("\n")
		for _, c := range calls {
			state := "calling"
			if c.Done {
				state = "complete"
			}
			b.WriteString(styles.BlueprintCall.Render(fmt.Sprintf("  %s %s [%s]", styles.StatusIcon(callStatus(c.Done)), c.Name, state)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d%%", p.Percent)))
	return strings.TrimRight(b.String(), "\n")
}

func callStatus(done bool) string {
	if done {
		return "complete"
	}
	return "active"
}
