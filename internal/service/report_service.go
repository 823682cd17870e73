package service

import (
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/util"
	"career_guidance_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ReportService runs the scoring pipeline for a completed attempt and
// assembles the narrative report. Regenerating from unchanged responses
// produces identical content modulo timestamps.
type ReportService struct {
	Attempts *repository.AttemptRepository
	Reports  *repository.ReportRepository
}

func NewReportService(attempts *repository.AttemptRepository, reports *repository.ReportRepository) *ReportService {
	return &ReportService{Attempts: attempts, Reports: reports}
}

type reportSections struct {
	summary          string
	topTraits        []string
	insights         []model.Insight
	recommendations  []string
	visualization    model.VisualizationData
	normalizedScores map[string]float64
}

// Generate scores the attempt and persists both the type-specific result rows
// and the report. The attempt must be completed.
func (s *ReportService) Generate(attempt *model.UserAssessmentAttempt) (*model.Report, error) {
	if !attempt.IsCompleted() {
		return nil, util.ErrAttemptNotCompleted
	}
	if attempt.AssessmentType == nil {
		return nil, fmt.Errorf("attempt %d has no assessment type loaded", attempt.ID)
	}

	start := time.Now()
	category := attempt.AssessmentType.Category

	report, err := s.generate(attempt, category)
	if err != nil {
		cause := "internal"
		if errors.Is(err, scoring.ErrMissingScoringRule) {
			cause = "missing_scoring_rule"
		}
		monitoring.ScoringErrors.WithLabelValues(cause).Inc()
		return nil, err
	}

	monitoring.ScoringDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	return report, nil
}

func (s *ReportService) generate(attempt *model.UserAssessmentAttempt, category string) (*model.Report, error) {
	rows, err := s.Attempts.ListResponses(attempt.ID)
	if err != nil {
		return nil, err
	}
	responses := make([]scoring.Response, 0, len(rows))
	for i := range rows {
		if rows[i].Question == nil {
			return nil, fmt.Errorf("response %d has no question loaded", rows[i].ID)
		}
		responses = append(responses, scoring.Response{
			Question: rows[i].Question,
			RawValue: rows[i].ResponseValue,
		})
	}

	var sections *reportSections
	switch category {
	case model.CategoryCareerInterest:
		sections, err = s.scoreRiasec(attempt, responses)
	case model.CategoryPersonality:
		sections, err = s.scorePersonality(attempt, responses)
	case model.CategorySkills:
		sections, err = s.scoreSkills(attempt, responses)
	default:
		return nil, fmt.Errorf("unknown assessment category %q", category)
	}
	if err != nil {
		return nil, err
	}

	normalized, err := json.Marshal(sections.normalizedScores)
	if err != nil {
		return nil, err
	}
	attempt.NormalizedScores = normalized
	if err := s.Attempts.Save(attempt); err != nil {
		return nil, err
	}

	report, err := buildReport(attempt.ID, sections)
	if err != nil {
		return nil, err
	}
	if err := s.Reports.Save(report); err != nil {
		return nil, err
	}
	return report, nil
}

func buildReport(attemptID uint, sections *reportSections) (*model.Report, error) {
	topTraits, err := json.Marshal(sections.topTraits)
	if err != nil {
		return nil, err
	}
	insights, err := json.Marshal(sections.insights)
	if err != nil {
		return nil, err
	}
	recommendations, err := json.Marshal(sections.recommendations)
	if err != nil {
		return nil, err
	}
	visualization, err := json.Marshal(sections.visualization)
	if err != nil {
		return nil, err
	}
	return &model.Report{
		AttemptID:         attemptID,
		Summary:           sections.summary,
		TopTraits:         topTraits,
		Insights:          insights,
		Recommendations:   recommendations,
		VisualizationData: visualization,
	}, nil
}

func (s *ReportService) scoreRiasec(attempt *model.UserAssessmentAttempt, responses []scoring.Response) (*reportSections, error) {
	scores, err := scoring.ScoreRiasec(responses)
	if err != nil {
		return nil, err
	}

	result := &model.RiasecResult{
		AttemptID:     attempt.ID,
		Realistic:     scores.Scores["R"],
		Investigative: scores.Scores["I"],
		Artistic:      scores.Scores["A"],
		Social:        scores.Scores["S"],
		Enterprising:  scores.Scores["E"],
		Conventional:  scores.Scores["C"],
		HollandCode:   scores.HollandCode,
	}
	if err := s.Attempts.SaveRiasecResult(result); err != nil {
		return nil, err
	}

	ranked := scores.RankedLetters()
	topNames := make([]string, 3)
	for i := 0; i < 3; i++ {
		topNames[i] = scoring.RiasecNames[ranked[i]]
	}

	var insights []model.Insight
	var recommendations []string
	for _, letter := range ranked[:3] {
		insights = append(insights, riasecInsights[letter])
		recommendations = append(recommendations, riasecRecommendations[letter]...)
	}

	normalized := make(map[string]float64, len(scoring.RiasecOrder))
	labels := make([]string, len(scoring.RiasecOrder))
	data := make([]float64, len(scoring.RiasecOrder))
	for i, letter := range scoring.RiasecOrder {
		name := scoring.RiasecNames[letter]
		normalized[name] = float64(scores.Normalized[letter])
		labels[i] = name
		data[i] = float64(scores.Normalized[letter])
	}

	return &reportSections{
		summary: fmt.Sprintf("Your Holland Code is %s. Your strongest interest areas are %s, %s and %s.",
			scores.HollandCode, topNames[0], topNames[1], topNames[2]),
		topTraits:       topNames,
		insights:        insights,
		recommendations: recommendations,
		visualization: model.VisualizationData{
			Labels:   labels,
			Datasets: []model.Dataset{{Data: data}},
			Type:     "radar",
		},
		normalizedScores: normalized,
	}, nil
}

func (s *ReportService) scorePersonality(attempt *model.UserAssessmentAttempt, responses []scoring.Response) (*reportSections, error) {
	scores, err := scoring.ScorePersonality(responses)
	if err != nil {
		return nil, err
	}

	workStyle, err := json.Marshal(scores.WorkStyle)
	if err != nil {
		return nil, err
	}
	result := &model.PersonalityTraitResult{
		AttemptID:         attempt.ID,
		Openness:          traitPtr(scores.Normalized, "Openness"),
		Conscientiousness: traitPtr(scores.Normalized, "Conscientiousness"),
		Extraversion:      traitPtr(scores.Normalized, "Extraversion"),
		Agreeableness:     traitPtr(scores.Normalized, "Agreeableness"),
		Neuroticism:       traitPtr(scores.Normalized, "Neuroticism"),
		WorkStyle:         workStyle,
	}
	if err := s.Attempts.SavePersonalityResult(result); err != nil {
		return nil, err
	}

	// Answered traits in fixed display order, then ranked for top traits.
	var answered []string
	for _, trait := range scoring.BigFiveTraits {
		if _, ok := scores.Normalized[trait]; ok {
			answered = append(answered, trait)
		}
	}
	ranked := make([]string, len(answered))
	copy(ranked, answered)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores.Normalized[ranked[i]] > scores.Normalized[ranked[j]]
	})
	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	var insights []model.Insight
	normalized := make(map[string]float64, len(answered))
	labels := make([]string, len(answered))
	data := make([]float64, len(answered))
	for i, trait := range answered {
		insights = append(insights, traitInsights[trait])
		normalized[trait] = float64(scores.Normalized[trait])
		labels[i] = trait
		data[i] = float64(scores.Normalized[trait])
	}

	summary := "No personality traits could be scored for this attempt."
	if len(ranked) > 0 {
		summary = fmt.Sprintf("Your most pronounced trait is %s (%d/100).", ranked[0], scores.Normalized[ranked[0]])
		if len(scores.WorkStyle) > 0 {
			summary += " You likely " + strings.Join(scores.WorkStyle, "; ") + "."
		}
	}

	recommendations := make([]string, 0, len(scores.WorkStyle))
	for _, pref := range scores.WorkStyle {
		recommendations = append(recommendations, "Favor roles where you "+pref+".")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Your trait scores are balanced; explore a broad range of work settings.")
	}

	return &reportSections{
		summary:         summary,
		topTraits:       top,
		insights:        insights,
		recommendations: recommendations,
		visualization: model.VisualizationData{
			Labels:   labels,
			Datasets: []model.Dataset{{Data: data}},
			Type:     "bar",
		},
		normalizedScores: normalized,
	}, nil
}

func (s *ReportService) scoreSkills(attempt *model.UserAssessmentAttempt, responses []scoring.Response) (*reportSections, error) {
	skills, err := scoring.ScoreSkills(responses)
	if err != nil {
		return nil, err
	}

	rows := make([]model.SkillProficiency, 0, len(skills))
	for _, sk := range skills {
		rows = append(rows, model.SkillProficiency{
			Domain:           sk.Domain,
			ProficiencyLevel: sk.Level,
			NormalizedScore:  sk.Normalized,
			Label:            sk.Label,
		})
	}
	if err := s.Attempts.ReplaceSkillProficiencies(attempt.ID, rows); err != nil {
		return nil, err
	}

	ranked := make([]scoring.SkillScore, len(skills))
	copy(ranked, skills)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Level > ranked[j].Level
	})

	var topTraits []string
	for i := 0; i < len(ranked) && i < 3; i++ {
		topTraits = append(topTraits, ranked[i].Domain)
	}

	var insights []model.Insight
	var recommendations []string
	normalized := make(map[string]float64, len(skills))
	labels := make([]string, len(skills))
	data := make([]float64, len(skills))
	for i, sk := range skills {
		insights = append(insights, model.Insight{
			Title:       sk.Domain,
			Description: fmt.Sprintf("Self-rated at the %s level (%d/5).", sk.Label, sk.Level),
		})
		recommendations = append(recommendations, sk.Domain+": "+skillRecommendations[sk.Level])
		normalized[sk.Domain] = float64(sk.Normalized)
		labels[i] = sk.Domain
		// Chart data stays on the 1-5 scale; exporters widen it to percent.
		data[i] = float64(sk.Level)
	}

	summary := "No skill domains could be scored for this attempt."
	if len(ranked) > 0 {
		summary = fmt.Sprintf("Your strongest skill area is %s at the %s level.", ranked[0].Domain, ranked[0].Label)
	}

	return &reportSections{
		summary:         summary,
		topTraits:       topTraits,
		insights:        insights,
		recommendations: recommendations,
		visualization: model.VisualizationData{
			Labels:   labels,
			Datasets: []model.Dataset{{Data: data}},
			Type:     "bar",
		},
		normalizedScores: normalized,
	}, nil
}

func traitPtr(normalized map[string]int, trait string) *int {
	if score, ok := normalized[trait]; ok {
		return &score
	}
	return nil
}
