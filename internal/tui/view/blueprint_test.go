package view

import (
	"strings"
	"testing"

	"github.com/mglynnhenley/loom/internal/progress"
)

// The blueprint log must be a pure, monotonic derivation: stepping
// percent from 0 to 100 one unit at a time never removes a line and
// never flips a completed phrasing back to in-progress. In-progress
// phrasings are the ones ending in "...".
func TestBlueprintLogMonotonic(t *testing.T) {
	prev := BlueprintLog(0, "The Builder")
	for percent := 1; percent <= 100; percent++ {
		cur := BlueprintLog(percent, "The Builder")

		if len(cur) < len(prev) {
			t.Fatalf("percent %d: log shrank from %d to %d lines", percent, len(prev), len(cur))
		}
		for i := range prev {
			if cur[i] == prev[i] {
				continue
			}
			// The only permitted change is in-progress to complete.
			if !strings.HasSuffix(prev[i], "...") {
				t.Fatalf("percent %d: settled line %q changed to %q", percent, prev[i], cur[i])
			}
			if strings.HasSuffix(cur[i], "...") {
				t.Fatalf("percent %d: line %q regressed to in-progress %q", percent, prev[i], cur[i])
			}
		}
		prev = cur
	}
}

func TestBlueprintLogIdempotent(t *testing.T) {
	for _, percent := range []int{0, 17, 34, 50, 99, 100} {
		a := BlueprintLog(percent, "The Builder")
		b := BlueprintLog(percent, "The Builder")
		if len(a) != len(b) {
			t.Fatalf("percent %d: repeated derivation differs in length", percent)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("percent %d line %d: %q != %q", percent, i, a[i], b[i])
			}
		}
	}
}

func TestBlueprintLogBounds(t *testing.T) {
	if got := BlueprintLog(-5, ""); len(got) != len(BlueprintLog(0, "")) {
		t.Error("negative percent should clamp to 0")
	}
	full := BlueprintLog(150, "")
	if len(full) != len(blueprintLog) {
		t.Errorf("overshoot percent should clamp to the full table, got %d of %d lines", len(full), len(blueprintLog))
	}
}

func TestBlueprintLogPersona(t *testing.T) {
	got := BlueprintLog(40, "The Builder")
	found := false
	for _, line := range got {
		if strings.Contains(line, "The Builder") {
			found = true
		}
	}
	if !found {
		t.Error("persona missing from log at 40%")
	}

	// No persona yet still renders a line, not an empty slot.
	for _, line := range BlueprintLog(40, "") {
		if strings.Contains(line, personaSlot) {
			t.Errorf("unexpanded persona slot in %q", line)
		}
	}
}

func TestBlueprintCalls(t *testing.T) {
	if got := BlueprintCalls(0); len(got) != 0 {
		t.Errorf("no calls should be visible at 0%%, got %d", len(got))
	}

	prev := BlueprintCalls(0)
	for percent := 1; percent <= 100; percent++ {
		cur := BlueprintCalls(percent)
		if len(cur) < len(prev) {
			t.Fatalf("percent %d: call rows shrank", percent)
		}
		for i := range prev {
			if prev[i].Done && !cur[i].Done {
				t.Fatalf("percent %d: call %s regressed complete to calling", percent, cur[i].Name)
			}
		}
		prev = cur
	}

	final := BlueprintCalls(100)
	if len(final) != len(blueprintCalls) {
		t.Fatalf("expected all %d calls at 100%%, got %d", len(blueprintCalls), len(final))
	}
	for _, row := range final {
		if !row.Done {
			t.Errorf("call %s not complete at 100%%", row.Name)
		}
	}
}

func TestBlueprintTableOrdered(t *testing.T) {
	last := 0
	for i, e := range blueprintLog {
		if e.Threshold < last {
			t.Errorf("entry %d threshold %d out of order (previous %d)", i, e.Threshold, last)
		}
		last = e.Threshold
		if e.Supersedes >= i {
			t.Errorf("entry %d supersedes %d, must reference an earlier entry", i, e.Supersedes)
		}
		if e.Supersedes >= 0 && blueprintLog[e.Supersedes].DoneLine == "" {
			t.Errorf("entry %d supersedes %d which has no done phrasing", i, e.Supersedes)
		}
	}

	for i, c := range blueprintCalls {
		if c.DoneAt < c.CallAt {
			t.Errorf("call %d (%s) completes before it starts", i, c.Name)
		}
	}
}

func TestRenderBlueprint(t *testing.T) {
	if got := RenderBlueprint(nil); got != "" {
		t.Errorf("nil state rendered %q, want empty", got)
	}

	p := progress.NewState()
	p.Start("gen-1")
	p.UpdateProgress(2, 40, "")
	p.SetStageDetail(progress.PatternsDetail{Persona: "The Builder"})

	got := RenderBlueprint(p)
	if !strings.Contains(got, "The Builder") {
		t.Error("blueprint missing persona line")
	}
	if !strings.Contains(got, "theme.generate") {
		t.Error("blueprint missing started service call")
	}
	if !strings.Contains(got, "40%") {
		t.Error("blueprint missing percent readout")
	}
}
