package service

import (
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/util"
	"career_guidance_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// openAttemptTTL bounds how long an anonymous session can resume an open
// attempt through the redis fast path.
const openAttemptTTL = 24 * time.Hour

type AssessmentService struct {
	Assessments *repository.AssessmentRepository
	Attempts    *repository.AttemptRepository
	Reports     *ReportService
	Redis       *redis.Client
	locks       *attemptLocks
}

func NewAssessmentService(assessments *repository.AssessmentRepository, attempts *repository.AttemptRepository, reports *ReportService, rdb *redis.Client) *AssessmentService {
	return &AssessmentService{
		Assessments: assessments,
		Attempts:    attempts,
		Reports:     reports,
		Redis:       rdb,
		locks:       newAttemptLocks(),
	}
}

func (s *AssessmentService) ListAssessments() ([]model.AssessmentType, error) {
	return s.Assessments.ListActiveTypes()
}

// StudentQuestion is the question projection handed to clients: scoring maps
// stay server-side.
type StudentQuestion struct {
	ID           uint   `json:"id"`
	QuestionType string `json:"questionType"`
	Content      string `json:"content"`
	Category     string `json:"category"`
	Order        int    `json:"order"`
}

func (s *AssessmentService) ListQuestions(slug string) ([]StudentQuestion, error) {
	assessment, err := s.findActiveType(slug)
	if err != nil {
		return nil, err
	}

	qs, err := s.Assessments.ListQuestions(assessment.ID)
	if err != nil {
		return nil, err
	}

	res := make([]StudentQuestion, len(qs))
	for i, q := range qs {
		res[i] = StudentQuestion{
			ID:           q.ID,
			QuestionType: q.QuestionType,
			Content:      q.Content,
			Category:     q.Category,
			Order:        q.Order,
		}
	}
	return res, nil
}

// StartAttempt opens an attempt for a user or an anonymous session. An open
// attempt cached for the same (session, assessment) pair is resumed instead
// of duplicated.
func (s *AssessmentService) StartAttempt(slug string, userID *uint, sessionToken string) (*model.UserAssessmentAttempt, error) {
	assessment, err := s.findActiveType(slug)
	if err != nil {
		return nil, err
	}

	if sessionToken == "" {
		sessionToken = uuid.New().String()
	}

	if existing := s.resumeOpenAttempt(sessionToken, slug); existing != nil {
		return existing, nil
	}

	attempt := &model.UserAssessmentAttempt{
		UserID:           userID,
		AssessmentTypeID: assessment.ID,
		SessionToken:     sessionToken,
		StartedAt:        time.Now(),
	}
	if err := s.Attempts.Create(attempt); err != nil {
		return nil, err
	}
	attempt.AssessmentType = assessment

	s.cacheOpenAttempt(sessionToken, slug, attempt.ID)
	return attempt, nil
}

func (s *AssessmentService) GetAttempt(id uint) (*model.UserAssessmentAttempt, error) {
	attempt, err := s.Attempts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	return attempt, err
}

// AuthorizeAccess checks that the caller owns the attempt: a logged-in owner,
// an admin, or the anonymous session that started it.
func (s *AssessmentService) AuthorizeAccess(attempt *model.UserAssessmentAttempt, claims *util.Claims, sessionToken string) error {
	if claims != nil && claims.Role == model.RoleAdmin {
		return nil
	}
	if attempt.UserID != nil {
		if claims != nil && claims.UserID == *attempt.UserID {
			return nil
		}
		return util.ErrPermissionDenied
	}
	if sessionToken != "" && sessionToken == attempt.SessionToken {
		return nil
	}
	return util.ErrPermissionDenied
}

type AnswerRequest struct {
	QuestionID    uint        `json:"questionId" binding:"required"`
	ResponseValue interface{} `json:"responseValue" binding:"required"`
	TimeSpent     *int        `json:"timeSpent" binding:"omitempty,gte=0"`
}

// SubmitAnswer validates and records one response. Values without a scoring
// rule are rejected here, at the boundary, instead of surfacing as an
// ambiguous zero at scoring time. Re-answering a question overwrites.
func (s *AssessmentService) SubmitAnswer(attemptID uint, req AnswerRequest) (*model.UserAssessmentResponse, error) {
	s.locks.Lock(attemptID)
	defer s.locks.Unlock(attemptID)

	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted() {
		return nil, util.ErrAttemptCompleted
	}

	question, err := s.Assessments.FindQuestionByID(req.QuestionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	if question.AssessmentTypeID != attempt.AssessmentTypeID {
		return nil, util.ErrQuestionNotFound
	}

	value := normalizeResponseValue(req.ResponseValue)
	score, err := responseScore(question, value)
	if err != nil {
		return nil, err
	}

	resp := &model.UserAssessmentResponse{
		AttemptID:        attemptID,
		QuestionID:       question.ID,
		ResponseValue:    value,
		ResponseScore:    &score,
		TimeSpentSeconds: req.TimeSpent,
	}
	if err := s.Attempts.UpsertResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CompleteAttempt closes the attempt and runs the scoring pipeline. A
// scoring failure leaves the attempt open and persists nothing. Completing an
// already-completed attempt just returns the existing report.
func (s *AssessmentService) CompleteAttempt(attemptID uint) (*model.Report, error) {
	s.locks.Lock(attemptID)
	defer s.locks.Unlock(attemptID)

	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	if attempt.IsCompleted() {
		report, err := s.Reports.Reports.FindByAttemptID(attempt.ID)
		if err == nil {
			return report, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return s.Reports.Generate(attempt)
	}

	now := time.Now()
	attempt.CompletedAt = &now

	report, err := s.Reports.Generate(attempt)
	if err != nil {
		attempt.CompletedAt = nil
		return nil, err
	}

	if attempt.AssessmentType != nil {
		monitoring.AttemptsCompleted.WithLabelValues(attempt.AssessmentType.Slug).Inc()
		s.dropOpenAttempt(attempt.SessionToken, attempt.AssessmentType.Slug)
	}
	return report, nil
}

// AttemptResults aggregates everything the results page needs.
type AttemptResults struct {
	Attempt     *model.UserAssessmentAttempt  `json:"attempt"`
	Assessment  *model.AssessmentType         `json:"assessment"`
	Report      *model.Report                 `json:"report"`
	Riasec      *model.RiasecResult           `json:"riasec,omitempty"`
	Personality *model.PersonalityTraitResult `json:"personality,omitempty"`
	Skills      []model.SkillProficiency      `json:"skills,omitempty"`
}

func (s *AssessmentService) GetResults(attemptID uint) (*AttemptResults, error) {
	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsCompleted() {
		return nil, util.ErrAttemptNotCompleted
	}

	report, err := s.Reports.Reports.FindByAttemptID(attempt.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Reports are derived data: regenerate from the persisted scores.
		report, err = s.Reports.Generate(attempt)
	}
	if err != nil {
		return nil, err
	}

	results := &AttemptResults{
		Attempt:    attempt,
		Assessment: attempt.AssessmentType,
		Report:     report,
	}

	switch attempt.AssessmentType.Category {
	case model.CategoryCareerInterest:
		if r, err := s.Attempts.FindRiasecResult(attempt.ID); err == nil {
			results.Riasec = r
		}
	case model.CategoryPersonality:
		if r, err := s.Attempts.FindPersonalityResult(attempt.ID); err == nil {
			results.Personality = r
		}
	case model.CategorySkills:
		rows, err := s.Attempts.ListSkillProficiencies(attempt.ID)
		if err == nil {
			results.Skills = rows
		}
	}

	return results, nil
}

type AssessmentTypeRequest struct {
	Slug        string `json:"slug" binding:"required,max=100"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,oneof=career_interest personality skills"`
	IsActive    *bool  `json:"isActive"`
}

func (s *AssessmentService) CreateAssessmentType(req AssessmentTypeRequest) (*model.AssessmentType, error) {
	t := &model.AssessmentType{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.Assessments.CreateType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *AssessmentService) UpdateAssessmentType(id uint, req AssessmentTypeRequest) (*model.AssessmentType, error) {
	t, err := s.Assessments.FindTypeByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Slug = req.Slug
	t.Name = req.Name
	t.Description = req.Description
	t.Category = req.Category
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.Assessments.UpdateType(t); err != nil {
		return nil, err
	}
	return t, nil
}

type QuestionRequest struct {
	QuestionType string          `json:"questionType"`
	Content      string          `json:"content" binding:"required"`
	Category     string          `json:"category" binding:"required,max=100"`
	Order        int             `json:"order"`
	ScoringMap   json.RawMessage `json:"scoringMap" binding:"required"`
}

func (s *AssessmentService) CreateQuestion(assessmentTypeID uint, req QuestionRequest) (*model.AssessmentQuestion, error) {
	if _, err := s.Assessments.FindTypeByID(assessmentTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}

	q := &model.AssessmentQuestion{
		AssessmentTypeID: assessmentTypeID,
		QuestionType:     req.QuestionType,
		Content:          req.Content,
		Category:         req.Category,
		Order:            req.Order,
		ScoringMap:       req.ScoringMap,
	}
	if q.QuestionType == "" {
		q.QuestionType = "rating_scale"
	}
	if _, err := q.ParseScoringMap(); err != nil {
		return nil, err
	}
	if err := s.Assessments.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) UpdateQuestion(id uint, req QuestionRequest) (*model.AssessmentQuestion, error) {
	q, err := s.Assessments.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.QuestionType != "" {
		q.QuestionType = req.QuestionType
	}
	q.Content = req.Content
	q.Category = req.Category
	q.Order = req.Order
	q.ScoringMap = req.ScoringMap
	if _, err := q.ParseScoringMap(); err != nil {
		return nil, err
	}
	if err := s.Assessments.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(id uint) error {
	if _, err := s.Assessments.FindQuestionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.Assessments.DeleteQuestion(id)
}

func (s *AssessmentService) findActiveType(slug string) (*model.AssessmentType, error) {
	assessment, err := s.Assessments.FindTypeBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	if !assessment.IsActive {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, nil
}

// normalizeResponseValue coerces the raw JSON value onto the string keys the
// scoring maps use. Floats that are whole numbers collapse to integers, so 5
// and 5.0 hit the same rule.
func normalizeResponseValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// responseScore precomputes the summed contribution of one response, mostly
// for inspection; scoring always recomputes from the maps.
func responseScore(question *model.AssessmentQuestion, value string) (float64, error) {
	totals, _, err := scoring.Accumulate([]scoring.Response{{Question: question, RawValue: value}})
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range totals {
		sum += v
	}
	return sum, nil
}

func (s *AssessmentService) openAttemptKey(token, slug string) string {
	return fmt.Sprintf("attempt:open:%s:%s", token, slug)
}

func (s *AssessmentService) resumeOpenAttempt(token, slug string) *model.UserAssessmentAttempt {
	if s.Redis == nil {
		return nil
	}
	ctx := context.Background()
	raw, err := s.Redis.Get(ctx, s.openAttemptKey(token, slug)).Result()
	if err != nil {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	attempt, err := s.Attempts.FindByID(uint(id))
	if err != nil || attempt.IsCompleted() || attempt.SessionToken != token {
		return nil
	}
	return attempt
}

func (s *AssessmentService) cacheOpenAttempt(token, slug string, attemptID uint) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	s.Redis.Set(ctx, s.openAttemptKey(token, slug), strconv.FormatUint(uint64(attemptID), 10), openAttemptTTL)
}

func (s *AssessmentService) dropOpenAttempt(token, slug string) {
	if s.Redis == nil || token == "" {
		return
	}
	s.Redis.Del(context.Background(), s.openAttemptKey(token, slug))
}
