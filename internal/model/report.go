package model

import "encoding/json"

// Report is the attempt-scoped narrative artifact. It is a pure projection of
// the already-persisted scores: regenerating it from unchanged responses
// yields identical content modulo timestamps.
// swagger:model Report
type Report struct {
	UUIDBase
	AttemptID         uint            `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"attemptId"`
	Summary           string          `gorm:"type:text" json:"summary"`
	TopTraits         json.RawMessage `gorm:"type:json" json:"topTraits"`         // ordered []string
	Insights          json.RawMessage `gorm:"type:json" json:"insights"`          // []Insight
	Recommendations   json.RawMessage `gorm:"type:json" json:"recommendations"`   // []string
	VisualizationData json.RawMessage `gorm:"type:json" json:"visualizationData"` // VisualizationData
}

func (Report) TableName() string {
	return "reports"
}

// Insight is one knowledge-base entry surfaced in a report.
type Insight struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	WorkEnvironments []string `json:"workEnvironments,omitempty"`
}

// VisualizationData is the chart-ready projection of the scores.
type VisualizationData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Type     string    `json:"type"` // radar for career_interest, bar otherwise
}

type Dataset struct {
	Data []float64 `json:"data"`
}
