package model

import (
	"encoding/json"
	"fmt"
)

// Assessment categories drive scorer dispatch and chart types.
const (
	CategoryCareerInterest = "career_interest"
	CategoryPersonality    = "personality"
	CategorySkills         = "skills"
)

// swagger:model AssessmentType
type AssessmentType struct {
	BaseModel
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:50;not null" json:"category"` // career_interest, personality, skills
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (AssessmentType) TableName() string {
	return "assessment_types"
}

// AssessmentQuestion belongs to one assessment type and is managed by admins.
// ScoringMap maps a raw response value to per-category contributions,
// e.g. {"5": {"R": 4}} or {"5": {"score": 5}}.
// swagger:model AssessmentQuestion
type AssessmentQuestion struct {
	BaseModel
	AssessmentTypeID uint            `gorm:"index;type:bigint unsigned;not null" json:"assessmentTypeId"`
	QuestionType     string          `gorm:"size:50;not null;default:'rating_scale'" json:"questionType"`
	Content          string          `gorm:"type:text;not null" json:"content"`
	Category         string          `gorm:"size:100;not null" json:"category"` // RIASEC letter, Big Five trait or skill domain
	Order            int             `gorm:"default:0" json:"order"`
	ScoringMap       json.RawMessage `gorm:"type:json" json:"scoringMap,omitempty"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}

// ParseScoringMap decodes the stored JSON into the lookup used by the scorers.
// Keys are the stringified raw response values.
func (q *AssessmentQuestion) ParseScoringMap() (map[string]map[string]float64, error) {
	if len(q.ScoringMap) == 0 {
		return nil, fmt.Errorf("question %d has no scoring map", q.ID)
	}
	var m map[string]map[string]float64
	if err := json.Unmarshal(q.ScoringMap, &m); err != nil {
		return nil, fmt.Errorf("question %d scoring map: %w", q.ID, err)
	}
	return m, nil
}
