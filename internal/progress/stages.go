// Package progress models the state of a dashboard generation as observed
// by the client. The pipeline itself runs in the fabric backend; this
// package only folds the backend's progress events into a snapshot the TUI
// can render. Built entirely from event data, so it never defends against
// out-of-order transitions; the backend enforces ordering.
package progress

// StageID identifies one step of the fixed six-stage generation sequence.
type StageID string

// The fixed stage identifiers, in pipeline order.
const (
	StageData       StageID = "data"
	StagePatterns   StageID = "patterns"
	StageTheme      StageID = "theme"
	StageWidgets    StageID = "widgets"
	StageEnrichment StageID = "enrichment"
	StageBuilding   StageID = "building"
)

// Status is the lifecycle state of a single stage.
// Transition order (pending → active → complete) is externally enforced.
type Status string

// Stage statuses.
const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusComplete Status = "complete"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusComplete:
		return true
	}
	return false
}

// Stage describes one step of the generation sequence for display.
type Stage struct {
	ID          StageID
	Title       string
	Description string
}

// stageList is the fixed, ordered list of pipeline stages. The overlay
// renders stages in this order regardless of event arrival order.
var stageList = []Stage{
	{ID: StageData, Title: "Collecting Data", Description: "Gathering your activity across connected platforms"},
	{ID: StagePatterns, Title: "Detecting Patterns", Description: "Finding your interests, tone and writing style"},
	{ID: StageTheme, Title: "Generating Theme", Description: "Designing a color palette to match your taste"},
	{ID: StageWidgets, Title: "Selecting Widgets", Description: "Choosing the cards your dashboard will show"},
	{ID: StageEnrichment, Title: "Enriching Content", Description: "Filling cards from connected services"},
	{ID: StageBuilding, Title: "Building Dashboard", Description: "Assembling everything into your dashboard"},
}

// Stages returns the fixed ordered stage list.
// The returned slice is a copy; callers may not mutate the canonical order.
func Stages() []Stage {
	out := make([]Stage, len(stageList))
	copy(out, stageList)
	return out
}

// StageCount is the number of stages in the fixed sequence.
func StageCount() int {
	return len(stageList)
}

// StageIndex returns the position of a stage in the fixed order,
// or -1 if the identifier is unknown.
func StageIndex(id StageID) int {
	for i := range stageList {
		if stageList[i].ID == id {
			return i
		}
	}
	return -1
}

// StageByID returns the stage definition for an identifier.
func StageByID(id StageID) (Stage, bool) {
	idx := StageIndex(id)
	if idx < 0 {
		return Stage{}, false
	}
	return stageList[idx], true
}

// IsValidStage reports whether id is one of the six fixed identifiers.
func IsValidStage(id StageID) bool {
	return StageIndex(id) >= 0
}
