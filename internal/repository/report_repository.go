package repository

import (
	"career_guidance_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Save keeps one report per attempt: regeneration updates in place.
func (r *ReportRepository) Save(report *model.Report) error {
	var existing model.Report
	err := r.DB.Where("attempt_id = ?", report.AttemptID).First(&existing).Error
	if err == nil {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
		return r.DB.Save(report).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindByAttemptID(attemptID uint) (*model.Report, error) {
	var report model.Report
	err := r.DB.Where("attempt_id = ?", attemptID).First(&report).Error
	return &report, err
}
