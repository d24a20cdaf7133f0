package progress

import (
	"encoding/json"
	"testing"

	"github.com/mglynnhenley/loom/internal/event"
)

func TestNewState_AllPending(t *testing.T) {
	s := NewState()
	for _, stage := range Stages() {
		if got := s.StatusOf(stage.ID); got != StatusPending {
			t.Errorf("StatusOf(%q) = %q, want pending", stage.ID, got)
		}
	}
	if s.Percent != 0 {
		t.Errorf("Percent = %d, want 0", s.Percent)
	}
}

func TestState_UpdateProgress(t *testing.T) {
	tests := []struct {
		name        string
		percent     int
		wantPercent int
	}{
		{"normal", 45, 45},
		{"clamped low", -5, 0},
		{"clamped high", 150, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.UpdateProgress(2, tt.percent, "working")
			if s.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", s.Percent, tt.wantPercent)
			}
			if s.CurrentStep != 2 {
				t.Errorf("CurrentStep = %d, want 2", s.CurrentStep)
			}
		})
	}

	t.Run("empty message preserved", func(t *testing.T) {
		s := NewState()
		s.UpdateProgress(0, 10, "first")
		s.UpdateProgress(0, 20, "")
		if s.Message != "first" {
			t.Errorf("Message = %q, want %q (empty update should not clear)", s.Message, "first")
		}
	})

	t.Run("nil safety", func(t *testing.T) {
		var s *State
		s.UpdateProgress(0, 10, "x") // should not panic
	})
}

func TestState_UpdateStageStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		s := NewState()
		s.UpdateStageStatus(StageData, StatusActive)
		if got := s.StatusOf(StageData); got != StatusActive {
			t.Errorf("StatusOf(data) = %q, want active", got)
		}
	})

	t.Run("unknown stage ignored", func(t *testing.T) {
		s := NewState()
		s.UpdateStageStatus("bogus", StatusActive)
		if _, ok := s.StageStatuses["bogus"]; ok {
			t.Error("unknown stage should not be recorded")
		}
	})

	t.Run("invalid status ignored", func(t *testing.T) {
		s := NewState()
		s.UpdateStageStatus(StageData, "running")
		if got := s.StatusOf(StageData); got != StatusPending {
			t.Errorf("StatusOf(data) = %q, want pending", got)
		}
	})

	t.Run("nil safety", func(t *testing.T) {
		var s *State
		s.UpdateStageStatus(StageData, StatusActive) // should not panic
	})
}

func TestState_Apply(t *testing.T) {
	s := NewState()

	s.Apply(event.NewGenerationStartedEvent("gen-7"))
	if s.GenerationID != "gen-7" {
		t.Errorf("GenerationID = %q, want gen-7", s.GenerationID)
	}

	s.Apply(event.NewStageStatusEvent("data", "active"))
	s.Apply(event.NewProgressUpdatedEvent(0, 12, "Collecting your data..."))
	s.Apply(event.NewStageDataEvent("data", json.RawMessage(`{"interactions": 1200, "platforms": ["instagram", "google"]}`)))

	if got := s.StatusOf(StageData); got != StatusActive {
		t.Errorf("StatusOf(data) = %q, want active", got)
	}
	if s.Percent != 12 {
		t.Errorf("Percent = %d, want 12", s.Percent)
	}

	detail, ok := s.DetailOf(StageData)
	if !ok {
		t.Fatal("data stage detail should be present")
	}
	data := detail.(DataDetail)
	if data.Interactions != 1200 || len(data.Platforms) != 2 {
		t.Errorf("detail = %+v", data)
	}

	s.Apply(event.NewGenerationCompletedEvent("gen-7", true))
	if !s.Completed || !s.Success {
		t.Errorf("after completion: Completed=%v Success=%v", s.Completed, s.Success)
	}
	if s.Percent != 100 {
		t.Errorf("Percent = %d, want 100 after successful completion", s.Percent)
	}
}

func TestState_Apply_MalformedStageData(t *testing.T) {
	s := NewState()
	s.Apply(event.NewStageDataEvent("theme", json.RawMessage(`{"colors": 42}`)))
	if _, ok := s.DetailOf(StageTheme); ok {
		t.Error("malformed payload should not attach a detail")
	}
}

func TestState_ActiveStage(t *testing.T) {
	t.Run("none active", func(t *testing.T) {
		s := NewState()
		if _, ok := s.ActiveStage(); ok {
			t.Error("no stage should be active on a fresh state")
		}
	})

	t.Run("first active in fixed order", func(t *testing.T) {
		s := NewState()
		s.UpdateStageStatus(StageTheme, StatusActive)
		s.UpdateStageStatus(StagePatterns, StatusActive)
		id, ok := s.ActiveStage()
		if !ok {
			t.Fatal("ActiveStage() should find an active stage")
		}
		if id != StagePatterns {
			t.Errorf("ActiveStage() = %q, want patterns (earlier in fixed order)", id)
		}
	})
}

func TestState_StageReached(t *testing.T) {
	s := NewState()
	s.UpdateStageStatus(StageData, StatusComplete)
	s.UpdateStageStatus(StagePatterns, StatusActive)

	tests := []struct {
		stage StageID
		want  bool
	}{
		{StageData, true},
		{StagePatterns, true},
		{StageTheme, false},
	}
	for _, tt := range tests {
		if got := s.StageReached(tt.stage); got != tt.want {
			t.Errorf("StageReached(%q) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestState_PersonaAvailable(t *testing.T) {
	t.Run("no detail", func(t *testing.T) {
		s := NewState()
		if s.PersonaAvailable() {
			t.Error("persona should not be available without patterns detail")
		}
	})

	t.Run("detail without persona", func(t *testing.T) {
		s := NewState()
		s.SetStageDetail(PatternsDetail{Tone: "warm"})
		if s.PersonaAvailable() {
			t.Error("persona should not be available with empty persona string")
		}
	})

	t.Run("persona present", func(t *testing.T) {
		s := NewState()
		s.SetStageDetail(PatternsDetail{Persona: "The Night Owl"})
		if !s.PersonaAvailable() {
			t.Error("persona should be available")
		}
	})
}

func TestState_Complete(t *testing.T) {
	s := NewState()
	if s.Complete() {
		t.Error("fresh state should not be complete")
	}
	s.UpdateProgress(5, 100, "done")
	if !s.Complete() {
		t.Error("state at 100%% should be complete")
	}

	var nilState *State
	if nilState.Complete() {
		t.Error("nil state should not be complete")
	}
}

func TestState_Start_ResetsEverything(t *testing.T) {
	s := NewState()
	s.UpdateStageStatus(StageData, StatusComplete)
	s.UpdateProgress(3, 60, "mid-run")
	s.SetStageDetail(DataDetail{Interactions: 10})
	s.MarkCompleted(true)

	s.Start("gen-2")

	if s.GenerationID != "gen-2" {
		t.Errorf("GenerationID = %q", s.GenerationID)
	}
	if s.Percent != 0 || s.CurrentStep != 0 || s.Completed {
		t.Errorf("Start should reset progress: %+v", s)
	}
	if got := s.StatusOf(StageData); got != StatusPending {
		t.Errorf("StatusOf(data) = %q, want pending after reset", got)
	}
	if _, ok := s.DetailOf(StageData); ok {
		t.Error("details should be cleared on reset")
	}
}
