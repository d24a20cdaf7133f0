package event

import (
	"encoding/json"
	"time"
)

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "stage.status", "progress.updated")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Generation Lifecycle Events
// -----------------------------------------------------------------------------

// GenerationStartedEvent is emitted when the backend begins assembling a
// dashboard for this client.
type GenerationStartedEvent struct {
	baseEvent
	GenerationID string // Unique identifier for this generation session
}

// NewGenerationStartedEvent creates a GenerationStartedEvent.
func NewGenerationStartedEvent(generationID string) GenerationStartedEvent {
	return GenerationStartedEvent{
		baseEvent:    newBaseEvent("generation.started"),
		GenerationID: generationID,
	}
}

// GenerationCompletedEvent is emitted when the backend pipeline finishes.
// Reaching this event does not advance the UI by itself; the overlay waits
// for explicit user confirmation.
type GenerationCompletedEvent struct {
	baseEvent
	GenerationID string
	Success      bool
}

// NewGenerationCompletedEvent creates a GenerationCompletedEvent.
func NewGenerationCompletedEvent(generationID string, success bool) GenerationCompletedEvent {
	return GenerationCompletedEvent{
		baseEvent:    newBaseEvent("generation.completed"),
		GenerationID: generationID,
		Success:      success,
	}
}

// -----------------------------------------------------------------------------
// Stage Events
// -----------------------------------------------------------------------------

// StageStatusEvent is emitted when a pipeline stage changes status.
// Stage is one of the fixed six identifiers; Status is "pending", "active"
// or "complete". The backend enforces transition order, the client does not.
type StageStatusEvent struct {
	baseEvent
	Stage  string
	Status string
}

// NewStageStatusEvent creates a StageStatusEvent.
func NewStageStatusEvent(stage, status string) StageStatusEvent {
	return StageStatusEvent{
		baseEvent: newBaseEvent("stage.status"),
		Stage:     stage,
		Status:    status,
	}
}

// StageDataEvent carries the stage-specific detail payload for a stage.
// Data is left raw here; the progress package decodes it into the typed
// per-stage shape and converts malformed payloads into explicit errors.
type StageDataEvent struct {
	baseEvent
	Stage string
	Data  json.RawMessage
}

// NewStageDataEvent creates a StageDataEvent.
func NewStageDataEvent(stage string, data json.RawMessage) StageDataEvent {
	return StageDataEvent{
		baseEvent: newBaseEvent("stage.data"),
		Stage:     stage,
		Data:      data,
	}
}

// -----------------------------------------------------------------------------
// Progress Events
// -----------------------------------------------------------------------------

// ProgressUpdatedEvent is emitted when overall generation progress moves.
type ProgressUpdatedEvent struct {
	baseEvent
	Step    int    // Index of the current stage in the fixed order
	Percent int    // Overall progress in [0, 100]
	Message string // Human-readable status line from the backend
}

// NewProgressUpdatedEvent creates a ProgressUpdatedEvent.
func NewProgressUpdatedEvent(step, percent int, message string) ProgressUpdatedEvent {
	return ProgressUpdatedEvent{
		baseEvent: newBaseEvent("progress.updated"),
		Step:      step,
		Percent:   percent,
		Message:   message,
	}
}
