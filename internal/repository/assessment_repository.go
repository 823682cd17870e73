package repository

import (
	"career_guidance_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) ListActiveTypes() ([]model.AssessmentType, error) {
	var types []model.AssessmentType
	err := r.DB.Where("is_active = ?", true).Order("id asc").Find(&types).Error
	return types, err
}

func (r *AssessmentRepository) FindTypeBySlug(slug string) (*model.AssessmentType, error) {
	var t model.AssessmentType
	err := r.DB.Where("slug = ?", slug).First(&t).Error
	return &t, err
}

func (r *AssessmentRepository) FindTypeByID(id uint) (*model.AssessmentType, error) {
	var t model.AssessmentType
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *AssessmentRepository) CreateType(t *model.AssessmentType) error {
	return r.DB.Create(t).Error
}

func (r *AssessmentRepository) UpdateType(t *model.AssessmentType) error {
	return r.DB.Save(t).Error
}

func (r *AssessmentRepository) ListQuestions(assessmentTypeID uint) ([]model.AssessmentQuestion, error) {
	var qs []model.AssessmentQuestion
	err := r.DB.Where("assessment_type_id = ?", assessmentTypeID).
		Order("`order` asc, id asc").Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) FindQuestionByID(id uint) (*model.AssessmentQuestion, error) {
	var q model.AssessmentQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *AssessmentRepository) CreateQuestion(q *model.AssessmentQuestion) error {
	return r.DB.Create(q).Error
}

func (r *AssessmentRepository) UpdateQuestion(q *model.AssessmentQuestion) error {
	return r.DB.Save(q).Error
}

func (r *AssessmentRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.AssessmentQuestion{}, id).Error
}
