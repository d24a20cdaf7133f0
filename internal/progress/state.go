package progress

import (
	"github.com/mglynnhenley/loom/internal/event"
)

// State holds the client-local snapshot of a running dashboard generation.
// Built entirely from event data and discarded when the overlay unmounts;
// nothing here persists across sessions.
type State struct {
	GenerationID  string
	CurrentStep   int    // Index into the fixed stage order
	Percent       int    // Overall progress in [0, 100]
	Message       string // Latest backend status line
	StageStatuses map[StageID]Status
	StageDetails  map[StageID]Detail
	Completed     bool
	Success       bool
}

// NewState creates a State with every stage pending.
func NewState() *State {
	statuses := make(map[StageID]Status, len(stageList))
	for _, s := range stageList {
		statuses[s.ID] = StatusPending
	}
	return &State{
		StageStatuses: statuses,
		StageDetails:  make(map[StageID]Detail),
	}
}

// Start resets the state for a new generation session.
func (s *State) Start(generationID string) {
	if s == nil {
		return
	}
	s.GenerationID = generationID
	s.CurrentStep = 0
	s.Percent = 0
	s.Message = ""
	s.Completed = false
	s.Success = false
	s.StageStatuses = make(map[StageID]Status, len(stageList))
	for _, stage := range stageList {
		s.StageStatuses[stage.ID] = StatusPending
	}
	s.StageDetails = make(map[StageID]Detail)
}

// UpdateProgress applies an overall progress update.
// Percent is clamped to [0, 100].
func (s *State) UpdateProgress(step, percent int, message string) {
	if s == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	s.CurrentStep = step
	s.Percent = percent
	if message != "" {
		s.Message = message
	}
}

// UpdateStageStatus records a stage status change. Unknown stages and
// unknown statuses are ignored; the renderer only knows the fixed six.
func (s *State) UpdateStageStatus(id StageID, status Status) {
	if s == nil || !IsValidStage(id) || !status.Valid() {
		return
	}
	if s.StageStatuses == nil {
		s.StageStatuses = make(map[StageID]Status, len(stageList))
	}
	s.StageStatuses[id] = status
}

// SetStageDetail attaches a decoded detail payload to a stage.
func (s *State) SetStageDetail(detail Detail) {
	if s == nil || detail == nil || !IsValidStage(detail.Stage()) {
		return
	}
	if s.StageDetails == nil {
		s.StageDetails = make(map[StageID]Detail)
	}
	s.StageDetails[detail.Stage()] = detail
}

// MarkCompleted marks the generation as finished.
// This never advances the UI on its own; continuation is gated on an
// explicit user confirmation in the overlay.
func (s *State) MarkCompleted(success bool) {
	if s == nil {
		return
	}
	s.Completed = true
	s.Success = success
	if success {
		s.Percent = 100
	}
}

// Apply folds a feed event into the state. Unrecognized event types are
// ignored so feed sources can grow without breaking older clients.
func (s *State) Apply(ev event.Event) {
	if s == nil || ev == nil {
		return
	}
	switch e := ev.(type) {
	case event.GenerationStartedEvent:
		s.Start(e.GenerationID)
	case event.ProgressUpdatedEvent:
		s.UpdateProgress(e.Step, e.Percent, e.Message)
	case event.StageStatusEvent:
		s.UpdateStageStatus(StageID(e.Stage), Status(e.Status))
	case event.StageDataEvent:
		detail, err := DecodeDetail(StageID(e.Stage), e.Data)
		if err != nil {
			// Malformed detail payloads degrade to the "initializing"
			// placeholder rather than poisoning the whole overlay.
			return
		}
		s.SetStageDetail(detail)
	case event.GenerationCompletedEvent:
		s.MarkCompleted(e.Success)
	}
}

// StatusOf returns the status for a stage, defaulting to pending for
// stages the feed has not mentioned yet.
func (s *State) StatusOf(id StageID) Status {
	if s == nil || s.StageStatuses == nil {
		return StatusPending
	}
	if status, ok := s.StageStatuses[id]; ok {
		return status
	}
	return StatusPending
}

// DetailOf returns the decoded detail payload for a stage, if present.
func (s *State) DetailOf(id StageID) (Detail, bool) {
	if s == nil || s.StageDetails == nil {
		return nil, false
	}
	detail, ok := s.StageDetails[id]
	return detail, ok
}

// ActiveStage returns the first active stage in the fixed order.
func (s *State) ActiveStage() (StageID, bool) {
	if s == nil {
		return "", false
	}
	for _, stage := range stageList {
		if s.StatusOf(stage.ID) == StatusActive {
			return stage.ID, true
		}
	}
	return "", false
}

// StageReached reports whether a stage is no longer pending. The overlay
// uses this to decide connector emphasis between consecutive stages.
func (s *State) StageReached(id StageID) bool {
	return s.StatusOf(id) != StatusPending
}

// PersonaAvailable reports whether the pattern-detection stage has
// produced a persona the overlay can show.
func (s *State) PersonaAvailable() bool {
	if s == nil {
		return false
	}
	detail, ok := s.DetailOf(StagePatterns)
	if !ok {
		return false
	}
	patterns, ok := detail.(PatternsDetail)
	return ok && patterns.Persona != ""
}

// Complete reports whether progress has reached 100%. This gates the
// continue affordance in the overlay; it does not trigger anything itself.
func (s *State) Complete() bool {
	return s != nil && s.Percent == 100
}
