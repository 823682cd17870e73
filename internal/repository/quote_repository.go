package repository

import (
	"career_guidance_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	DB *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

func (r *QuoteRepository) GetAll() ([]*model.Quote, error) {
	var quotes []*model.Quote
	err := r.DB.Order("created_at asc").Find(&quotes).Error
	return quotes, err
}

func (r *QuoteRepository) Create(quote *model.Quote) error {
	return r.DB.Create(quote).Error
}

func (r *QuoteRepository) Update(quote *model.Quote) error {
	return r.DB.Save(quote).Error
}

func (r *QuoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quote{}, id).Error
}

func (r *QuoteRepository) GetEnabled() ([]*model.Quote, error) {
	var quotes []*model.Quote
	err := r.DB.Where("is_enabled = ?", true).Find(&quotes).Error
	return quotes, err
}

func (r *QuoteRepository) GetCurrent() (*model.Quote, error) {
	var quote model.Quote
	err := r.DB.Where("is_currently_used = ?", true).First(&quote).Error
	return &quote, err
}

func (r *QuoteRepository) SetCurrent(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Quote{}).Where("is_currently_used = ?", true).
			Update("is_currently_used", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Quote{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"is_currently_used": true,
				"last_used_at":      time.Now(),
			}).Error
	})
}
