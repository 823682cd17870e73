package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/pkg/logger"
	"career_guidance_backend/pkg/monitoring"
	"career_guidance_backend/pkg/pdf"

	"go.uber.org/zap"
)

// ExportService projects an already-generated report into JSON or PDF. It
// owns no scoring logic: everything it emits was computed upstream.
type ExportService struct {
	Assessments *AssessmentService
	Storage     *StorageService
}

func NewExportService(assessments *AssessmentService, storage *StorageService) *ExportService {
	return &ExportService{Assessments: assessments, Storage: storage}
}

// ReportExport is the stable JSON export shape.
type ReportExport struct {
	Attempt    ExportAttempt    `json:"attempt"`
	Assessment ExportAssessment `json:"assessment"`
	Report     ExportReport     `json:"report"`
}

type ExportAttempt struct {
	ID               uint            `json:"id"`
	StartedAt        time.Time       `json:"startedAt"`
	CompletedAt      *time.Time      `json:"completedAt"`
	NormalizedScores json.RawMessage `json:"normalizedScores"`
}

type ExportAssessment struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

type ExportReport struct {
	ID                string          `json:"id"`
	Summary           string          `json:"summary"`
	TopTraits         json.RawMessage `json:"top_traits"`
	Insights          json.RawMessage `json:"insights"`
	Recommendations   json.RawMessage `json:"recommendations"`
	VisualizationData json.RawMessage `json:"visualization_data"`
}

func (s *ExportService) ExportJSON(attemptID uint) (*ReportExport, error) {
	results, err := s.Assessments.GetResults(attemptID)
	if err != nil {
		return nil, err
	}

	monitoring.ReportExports.WithLabelValues("json").Inc()

	return &ReportExport{
		Attempt: ExportAttempt{
			ID:               results.Attempt.ID,
			StartedAt:        results.Attempt.StartedAt,
			CompletedAt:      results.Attempt.CompletedAt,
			NormalizedScores: results.Attempt.NormalizedScores,
		},
		Assessment: ExportAssessment{
			Name:     results.Assessment.Name,
			Slug:     results.Assessment.Slug,
			Category: results.Assessment.Category,
		},
		Report: ExportReport{
			ID:                results.Report.ID,
			Summary:           results.Report.Summary,
			TopTraits:         results.Report.TopTraits,
			Insights:          results.Report.Insights,
			Recommendations:   results.Report.Recommendations,
			VisualizationData: results.Report.VisualizationData,
		},
	}, nil
}

// ExportPDF renders the report document and archives a copy through the
// storage provider. Archiving is best-effort: a storage failure never blocks
// the download.
func (s *ExportService) ExportPDF(ctx context.Context, attemptID uint) ([]byte, error) {
	results, err := s.Assessments.GetResults(attemptID)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(results)
	if err != nil {
		return nil, err
	}

	out, err := pdf.Render(doc)
	if err != nil {
		return nil, err
	}

	monitoring.ReportExports.WithLabelValues("pdf").Inc()

	if s.Storage != nil {
		filename := fmt.Sprintf("reports/attempt_%d.pdf", attemptID)
		if _, err := s.Storage.Upload(ctx, filename, bytes.NewReader(out), int64(len(out)), "application/pdf"); err != nil {
			logger.Log.Warn("report archive upload failed", zap.Uint("attempt", attemptID), zap.Error(err))
		}
	}

	return out, nil
}

func buildDocument(results *AttemptResults) (*pdf.Document, error) {
	var topTraits []string
	if err := json.Unmarshal(results.Report.TopTraits, &topTraits); err != nil {
		return nil, err
	}
	var insights []model.Insight
	if err := json.Unmarshal(results.Report.Insights, &insights); err != nil {
		return nil, err
	}
	var recommendations []string
	if err := json.Unmarshal(results.Report.Recommendations, &recommendations); err != nil {
		return nil, err
	}
	var viz model.VisualizationData
	if err := json.Unmarshal(results.Report.VisualizationData, &viz); err != nil {
		return nil, err
	}

	doc := &pdf.Document{
		Title:           documentTitle(results.Assessment.Category),
		AssessmentName:  results.Assessment.Name,
		GeneratedAt:     time.Now(),
		Summary:         results.Report.Summary,
		TopTraits:       topTraits,
		Recommendations: recommendations,
	}

	for _, ins := range insights {
		doc.Insights = append(doc.Insights, pdf.InsightSection{
			Title:            ins.Title,
			Description:      ins.Description,
			WorkEnvironments: ins.WorkEnvironments,
		})
	}

	// The RIASEC table and bar chart appear only on career-interest reports.
	if results.Assessment.Category == model.CategoryCareerInterest && results.Riasec != nil {
		doc.Riasec = riasecSection(results)
	}

	if len(viz.Labels) > 0 && len(viz.Datasets) > 0 {
		doc.Chart = &pdf.ChartSection{
			Labels:    viz.Labels,
			Values:    viz.Datasets[0].Data,
			FiveScale: results.Assessment.Category == model.CategorySkills,
		}
	}

	return doc, nil
}

func riasecSection(results *AttemptResults) *pdf.RiasecSection {
	scores := map[string]int{
		"R": results.Riasec.Realistic,
		"I": results.Riasec.Investigative,
		"A": results.Riasec.Artistic,
		"S": results.Riasec.Social,
		"E": results.Riasec.Enterprising,
		"C": results.Riasec.Conventional,
	}

	var normalized map[string]float64
	_ = json.Unmarshal(results.Attempt.NormalizedScores, &normalized)

	section := &pdf.RiasecSection{HollandCode: results.Riasec.HollandCode}
	for _, letter := range scoring.RiasecOrder {
		name := scoring.RiasecNames[letter]
		section.Rows = append(section.Rows, pdf.ScoreRow{
			Label: name,
			Score: scores[letter],
			Pct:   pdf.BarPercent(normalized[name], false),
		})
	}
	return section
}

func documentTitle(category string) string {
	switch category {
	case model.CategoryCareerInterest:
		return "Career Interest Report"
	case model.CategoryPersonality:
		return "Personality Report"
	case model.CategorySkills:
		return "Skills Report"
	}
	return "Assessment Report"
}
