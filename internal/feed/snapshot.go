package feed

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/progress"
	"github.com/mglynnhenley/loom/internal/widget"
)

// Snapshot is the progress document the backend writes for a generation.
// The client never talks to the backend directly; this file is the whole
// contract.
type Snapshot struct {
	GenerationID string                     `json:"generation_id"`
	Step         int                        `json:"step"`
	Percent      int                        `json:"percent"`
	Message      string                     `json:"message"`
	Stages       map[string]string          `json:"stages"`
	StageData    map[string]json.RawMessage `json:"stage_data,omitempty"`
	Completed    bool                       `json:"completed"`
	Success      bool                       `json:"success"`
	Widgets      *widget.Manifest           `json:"widgets,omitempty"`
}

// ReadSnapshot reads and decodes a snapshot file.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFeedError("snapshot", path, errors.ErrSnapshotNotFound)
		}
		return nil, errors.NewFeedError("snapshot", "reading snapshot file", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.NewFeedError("snapshot", "parsing snapshot file", err)
	}
	return &snap, nil
}

// Diff derives the events that move a consumer from prev to s. A nil
// prev, or a snapshot from a different generation, yields the full event
// set including GenerationStartedEvent. Stage events come out in the
// fixed pipeline order so consumers see a stable sequence.
func (s *Snapshot) Diff(prev *Snapshot) []event.Event {
	var events []event.Event

	fresh := prev == nil || prev.GenerationID != s.GenerationID
	if fresh {
		events = append(events, event.NewGenerationStartedEvent(s.GenerationID))
		prev = &Snapshot{GenerationID: s.GenerationID}
	}

	for _, stage := range progress.Stages() {
		id := string(stage.ID)

		status, ok := s.Stages[id]
		if ok && status != prev.Stages[id] {
			events = append(events, event.NewStageStatusEvent(id, status))
		}

		data, ok := s.StageData[id]
		if ok && !bytes.Equal(data, prev.StageData[id]) {
			events = append(events, event.NewStageDataEvent(id, data))
		}
	}

	if s.Step != prev.Step || s.Percent != prev.Percent || s.Message != prev.Message {
		events = append(events, event.NewProgressUpdatedEvent(s.Step, s.Percent, s.Message))
	}

	if s.Completed && !prev.Completed {
		events = append(events, event.NewGenerationCompletedEvent(s.GenerationID, s.Success))
	}

	return events
}
