package model

import (
	"encoding/json"
	"time"
)

// UserAssessmentAttempt is one run through one assessment type. UserID is
// nullable: anonymous attempts are keyed by SessionToken only. CompletedAt
// being nil is the sole open/completed discriminator.
// swagger:model UserAssessmentAttempt
type UserAssessmentAttempt struct {
	BaseModel
	UserID           *uint           `gorm:"index;type:bigint unsigned" json:"userId,omitempty"`
	User             *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AssessmentTypeID uint            `gorm:"index;type:bigint unsigned;not null" json:"assessmentTypeId"`
	AssessmentType   *AssessmentType `gorm:"foreignKey:AssessmentTypeID" json:"assessmentType,omitempty"`
	SessionToken     string          `gorm:"size:36;index" json:"sessionToken,omitempty"`
	StartedAt        time.Time       `json:"startedAt"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
	NormalizedScores json.RawMessage `gorm:"type:json" json:"normalizedScores,omitempty"` // category -> 0..100
}

func (UserAssessmentAttempt) TableName() string {
	return "user_assessment_attempts"
}

func (a *UserAssessmentAttempt) IsCompleted() bool {
	return a.CompletedAt != nil
}

// UserAssessmentResponse is one answer to one question within one attempt.
// The (attempt_id, question_id) pair is unique: re-answering overwrites, so
// scoring never double-counts a question.
// swagger:model UserAssessmentResponse
type UserAssessmentResponse struct {
	BaseModel
	AttemptID        uint                `gorm:"uniqueIndex:idx_attempt_question;type:bigint unsigned;not null" json:"attemptId"`
	QuestionID       uint                `gorm:"uniqueIndex:idx_attempt_question;type:bigint unsigned;not null" json:"questionId"`
	Question         *AssessmentQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	ResponseValue    string              `gorm:"size:255;not null" json:"responseValue"`
	ResponseScore    *float64            `json:"responseScore,omitempty"`
	TimeSpentSeconds *int                `json:"timeSpentSeconds,omitempty"`
}

func (UserAssessmentResponse) TableName() string {
	return "user_assessment_responses"
}
