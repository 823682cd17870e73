package service

import (
	"testing"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the service stack onto an in-memory sqlite database seeded
// with the default assessment banks. Redis and object storage stay nil; both
// are optional at runtime.
type testEnv struct {
	DB          *gorm.DB
	Assessments *AssessmentService
	Reports     *ReportService
	Export      *ExportService
	Attempts    *repository.AttemptRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	assessmentRepo := repository.NewAssessmentRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	reportRepo := repository.NewReportRepository(db)

	reports := NewReportService(attemptRepo, reportRepo)
	assessments := NewAssessmentService(assessmentRepo, attemptRepo, reports, nil)
	export := NewExportService(assessments, nil)

	return &testEnv{
		DB:          db,
		Assessments: assessments,
		Reports:     reports,
		Export:      export,
		Attempts:    attemptRepo,
	}
}

// answerAll submits the same raw value for every question of the attempt's
// assessment.
func (e *testEnv) answerAll(t *testing.T, attempt *model.UserAssessmentAttempt, slug string, value interface{}) {
	t.Helper()
	questions, err := e.Assessments.ListQuestions(slug)
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	for _, q := range questions {
		_, err := e.Assessments.SubmitAnswer(attempt.ID, AnswerRequest{
			QuestionID:    q.ID,
			ResponseValue: value,
		})
		require.NoError(t, err)
	}
}

func (e *testEnv) startAttempt(t *testing.T, slug string) *model.UserAssessmentAttempt {
	t.Helper()
	attempt, err := e.Assessments.StartAttempt(slug, nil, "")
	require.NoError(t, err)
	require.NotZero(t, attempt.ID)
	return attempt
}
