package service

import (
	"errors"
	"math/rand"
	"time"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
)

const quoteRotation = 12 * time.Hour

type QuoteService struct {
	QuoteRepo *repository.QuoteRepository
}

func NewQuoteService(quoteRepo *repository.QuoteRepository) *QuoteService {
	return &QuoteService{QuoteRepo: quoteRepo}
}

func (s *QuoteService) GetAllQuotes() ([]*model.Quote, error) {
	return s.QuoteRepo.GetAll()
}

// GetCurrentQuote returns the quote shown on page headers, rotating among the
// enabled pool every 12 hours.
func (s *QuoteService) GetCurrentQuote() (*model.Quote, error) {
	current, err := s.QuoteRepo.GetCurrent()
	if err != nil {
		enabled, err := s.QuoteRepo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return nil, err
		}
		if err := s.QuoteRepo.SetCurrent(enabled[0].ID); err != nil {
			return nil, err
		}
		enabled[0].IsCurrentlyUsed = true
		enabled[0].LastUsedAt = time.Now()
		return enabled[0], nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabled, err := s.QuoteRepo.GetEnabled()
	if err == nil && len(enabled) > 1 && elapsed >= quoteRotation {
		var candidates []*model.Quote
		for _, q := range enabled {
			if q.ID != current.ID {
				candidates = append(candidates, q)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			if err := s.QuoteRepo.SetCurrent(next.ID); err != nil {
				return current, nil
			}
			next.IsCurrentlyUsed = true
			next.LastUsedAt = time.Now()
			return next, nil
		}
	}

	return current, nil
}

type QuoteRequest struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
}

func (s *QuoteService) CreateQuote(req QuoteRequest) (*model.Quote, error) {
	quote := &model.Quote{
		Content:   req.Content,
		Author:    req.Author,
		IsEnabled: true,
	}
	if err := s.QuoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) UpdateQuote(id uint, content, author string, isEnabled bool) error {
	var quote model.Quote
	if err := s.QuoteRepo.DB.First(&quote, id).Error; err != nil {
		return err
	}

	current, err := s.QuoteRepo.GetCurrent()
	if err == nil && current.ID == id && !isEnabled {
		enabled, err := s.QuoteRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("at least one quote must stay enabled")
		}
	}

	quote.Content = content
	quote.Author = author
	quote.IsEnabled = isEnabled
	return s.QuoteRepo.Update(&quote)
}

func (s *QuoteService) DeleteQuote(id uint) error {
	current, err := s.QuoteRepo.GetCurrent()
	if err == nil && current.ID == id {
		enabled, err := s.QuoteRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("at least one quote must stay enabled")
		}
	}
	return s.QuoteRepo.Delete(id)
}

// SwitchToQuote forces a specific enabled quote to the front immediately.
func (s *QuoteService) SwitchToQuote(id uint) error {
	quotes, err := s.QuoteRepo.GetAll()
	if err != nil {
		return err
	}

	found := false
	for _, q := range quotes {
		if q.ID == id {
			found = true
			if !q.IsEnabled {
				return errors.New("quote is disabled")
			}
			break
		}
	}
	if !found {
		return errors.New("quote not found")
	}

	return s.QuoteRepo.SetCurrent(id)
}
