package repository

import (
	"career_guidance_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.UserAssessmentAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.UserAssessmentAttempt, error) {
	var a model.UserAssessmentAttempt
	err := r.DB.Preload("AssessmentType").First(&a, id).Error
	return &a, err
}

func (r *AttemptRepository) Save(attempt *model.UserAssessmentAttempt) error {
	return r.DB.Save(attempt).Error
}

// UpsertResponse enforces last-answer-wins on the (attempt, question) pair so
// a re-submitted question can never double-count at scoring time.
func (r *AttemptRepository) UpsertResponse(resp *model.UserAssessmentResponse) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"response_value", "response_score", "time_spent_seconds", "updated_at",
		}),
	}).Create(resp).Error
}

// ListResponses returns the attempt's responses with questions preloaded, in
// question presentation order.
func (r *AttemptRepository) ListResponses(attemptID uint) ([]model.UserAssessmentResponse, error) {
	var responses []model.UserAssessmentResponse
	err := r.DB.Preload("Question").
		Joins("JOIN assessment_questions ON assessment_questions.id = user_assessment_responses.question_id").
		Where("user_assessment_responses.attempt_id = ?", attemptID).
		Order("assessment_questions.`order` asc, assessment_questions.id asc").
		Find(&responses).Error
	return responses, err
}

func (r *AttemptRepository) CountResponses(attemptID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.UserAssessmentResponse{}).Where("attempt_id = ?", attemptID).Count(&n).Error
	return n, err
}

// SaveRiasecResult overwrites any previous result row for the attempt.
func (r *AttemptRepository) SaveRiasecResult(result *model.RiasecResult) error {
	var existing model.RiasecResult
	err := r.DB.Where("attempt_id = ?", result.AttemptID).First(&existing).Error
	if err == nil {
		result.ID = existing.ID
		result.CreatedAt = existing.CreatedAt
		return r.DB.Save(result).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(result).Error
}

func (r *AttemptRepository) FindRiasecResult(attemptID uint) (*model.RiasecResult, error) {
	var result model.RiasecResult
	err := r.DB.Where("attempt_id = ?", attemptID).First(&result).Error
	return &result, err
}

func (r *AttemptRepository) SavePersonalityResult(result *model.PersonalityTraitResult) error {
	var existing model.PersonalityTraitResult
	err := r.DB.Where("attempt_id = ?", result.AttemptID).First(&existing).Error
	if err == nil {
		result.ID = existing.ID
		result.CreatedAt = existing.CreatedAt
		return r.DB.Save(result).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(result).Error
}

func (r *AttemptRepository) FindPersonalityResult(attemptID uint) (*model.PersonalityTraitResult, error) {
	var result model.PersonalityTraitResult
	err := r.DB.Where("attempt_id = ?", attemptID).First(&result).Error
	return &result, err
}

// ReplaceSkillProficiencies swaps the attempt's full domain set in one
// transaction.
func (r *AttemptRepository) ReplaceSkillProficiencies(attemptID uint, rows []model.SkillProficiency) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("attempt_id = ?", attemptID).Delete(&model.SkillProficiency{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].AttemptID = attemptID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AttemptRepository) ListSkillProficiencies(attemptID uint) ([]model.SkillProficiency, error) {
	var rows []model.SkillProficiency
	err := r.DB.Where("attempt_id = ?", attemptID).Order("id asc").Find(&rows).Error
	return rows, err
}
