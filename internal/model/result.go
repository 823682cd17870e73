package model

import "encoding/json"

// RiasecResult holds the six interest scores plus the derived 3-letter
// Holland code for a completed attempt. One row per attempt, overwritten on
// re-scoring.
// swagger:model RiasecResult
type RiasecResult struct {
	BaseModel
	AttemptID     uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"attemptId"`
	Realistic     int    `gorm:"default:0" json:"realistic"`
	Investigative int    `gorm:"default:0" json:"investigative"`
	Artistic      int    `gorm:"default:0" json:"artistic"`
	Social        int    `gorm:"default:0" json:"social"`
	Enterprising  int    `gorm:"default:0" json:"enterprising"`
	Conventional  int    `gorm:"default:0" json:"conventional"`
	HollandCode   string `gorm:"size:3;not null" json:"hollandCode"`
}

func (RiasecResult) TableName() string {
	return "riasec_results"
}

// PersonalityTraitResult holds normalized (0-100) Big Five scores. A trait
// with no responses stays nil rather than reading as zero.
// swagger:model PersonalityTraitResult
type PersonalityTraitResult struct {
	BaseModel
	AttemptID         uint            `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"attemptId"`
	Openness          *int            `json:"openness,omitempty"`
	Conscientiousness *int            `json:"conscientiousness,omitempty"`
	Extraversion      *int            `json:"extraversion,omitempty"`
	Agreeableness     *int            `json:"agreeableness,omitempty"`
	Neuroticism       *int            `json:"neuroticism,omitempty"`
	WorkStyle         json.RawMessage `gorm:"type:json" json:"workStyle,omitempty"`
}

func (PersonalityTraitResult) TableName() string {
	return "personality_trait_results"
}

// SkillProficiency is one row per answered skill domain.
// swagger:model SkillProficiency
type SkillProficiency struct {
	BaseModel
	AttemptID        uint   `gorm:"uniqueIndex:idx_attempt_domain;type:bigint unsigned;not null" json:"attemptId"`
	Domain           string `gorm:"uniqueIndex:idx_attempt_domain;size:100;not null" json:"domain"`
	ProficiencyLevel int    `gorm:"not null" json:"proficiencyLevel"` // 1..5
	NormalizedScore  int    `gorm:"not null" json:"normalizedScore"`  // 0..100
	Label            string `gorm:"size:50;not null" json:"label"`
}

func (SkillProficiency) TableName() string {
	return "skill_proficiencies"
}
