package progress

import (
	"encoding/json"

	"github.com/mglynnhenley/loom/internal/errors"
)

// Detail is the tagged union of per-stage detail payloads. Each stage
// carries a different shape; decoding is discriminated by the stage
// identifier so a malformed payload becomes an explicit error at the
// boundary instead of a silent zero value deep in a renderer.
type Detail interface {
	// Stage returns the stage this payload belongs to.
	Stage() StageID
}

// DataDetail is the detail payload for the data-collection stage.
type DataDetail struct {
	Interactions int      `json:"interactions"`
	Platforms    []string `json:"platforms"`
}

// Stage implements Detail.
func (DataDetail) Stage() StageID { return StageData }

// PatternsDetail is the detail payload for the pattern-detection stage.
type PatternsDetail struct {
	Persona      string   `json:"persona"`
	Interests    []string `json:"interests"`
	Tone         string   `json:"tone"`
	WritingStyle string   `json:"writing_style"`
}

// Stage implements Detail.
func (PatternsDetail) Stage() StageID { return StagePatterns }

// ThemeDetail is the detail payload for the theme-generation stage.
// Colors are hex strings like "#A78BFA".
type ThemeDetail struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Stage implements Detail.
func (ThemeDetail) Stage() StageID { return StageTheme }

// WidgetsDetail is the detail payload for the widget-selection stage.
type WidgetsDetail struct {
	Selected []string `json:"selected"`
}

// Stage implements Detail.
func (WidgetsDetail) Stage() StageID { return StageWidgets }

// EnrichmentDetail is the detail payload for the enrichment stage.
type EnrichmentDetail struct {
	APIs []string `json:"apis"`
}

// Stage implements Detail.
func (EnrichmentDetail) Stage() StageID { return StageEnrichment }

// BuildingDetail is the detail payload for the final assembly stage.
type BuildingDetail struct {
	Cards   int `json:"cards"`
	Widgets int `json:"widgets"`
}

// Stage implements Detail.
func (BuildingDetail) Stage() StageID { return StageBuilding }

// DecodeDetail decodes a raw stage payload into its typed shape,
// discriminated by stage identifier. Unknown stages and malformed JSON
// return a *errors.PayloadError; callers render a placeholder instead.
func DecodeDetail(id StageID, raw json.RawMessage) (Detail, error) {
	if !IsValidStage(id) {
		return nil, errors.NewPayloadError(string(id), "unknown stage", errors.ErrUnknownStage)
	}
	if len(raw) == 0 {
		return nil, errors.NewPayloadError(string(id), "empty payload", nil)
	}

	var (
		detail Detail
		err    error
	)
	switch id {
	case StageData:
		var d DataDetail
		err = json.Unmarshal(raw, &d)
		detail = d
	case StagePatterns:
		var d PatternsDetail
		err = json.Unmarshal(raw, &d)
		detail = d
	case StageTheme:
		var d ThemeDetail
		err = json.Unmarshal(raw, &d)
		detail = d
	case StageWidgets:
		var d WidgetsDetail
		err = json.Unmarshal(raw, &d)
		detail = d
	case StageEnrichment:
		var d EnrichmentDetail
		err = json.Unmarshal(raw, &d)
		detail = d
	case StageBuilding:
		var d BuildingDetail
		err = json.Unmarshal(raw, &d)
		detail = d
	}
	if err != nil {
		return nil, errors.NewPayloadError(string(id), "malformed stage payload", err)
	}
	return detail, nil
}
