package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	reports := service.NewReportService(attemptRepo, reportRepo)
	assessments := service.NewAssessmentService(assessmentRepo, attemptRepo, reports, nil)
	export := service.NewExportService(assessments, nil)

	c := NewAssessmentController(assessments, export)

	router := gin.New()
	api := router.Group("/api/assessments")
	{
		api.GET("", c.ListAssessments)
		api.GET("/:slug/questions", c.ListQuestions)
		api.POST("/:slug/start", c.StartAttempt)
		api.POST("/attempts/:id/answer", c.SubmitAnswer)
		api.POST("/attempts/:id/complete", c.CompleteAttempt)
		api.GET("/attempts/:id/results", c.GetResults)
		api.GET("/attempts/:id/export", c.ExportReport)
		api.GET("/attempts/:id/export/pdf", c.ExportReportPDF)
	}
	return router
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, sessionToken string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.Header.Set("X-Session-Token", sessionToken)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "application/pdf" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestAnonymousAssessmentFlow(t *testing.T) {
	router := newTestRouter(t)

	// Start an anonymous attempt.
	w, env := doJSON(t, router, http.MethodPost, "/api/assessments/riasec/start", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var started struct {
		SessionToken string `json:"sessionToken"`
		Attempt      struct {
			ID uint `json:"id"`
		} `json:"attempt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	require.NotEmpty(t, started.SessionToken)
	require.NotZero(t, started.Attempt.ID)
	token := started.SessionToken
	attemptPath := fmt.Sprintf("/api/assessments/attempts/%d", started.Attempt.ID)

	// Fetch questions and answer them all.
	w, env = doJSON(t, router, http.MethodGet, "/api/assessments/riasec/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var questions []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &questions))
	require.Len(t, questions, 12)

	for _, q := range questions {
		w, _ = doJSON(t, router, http.MethodPost, attemptPath+"/answer", token, gin.H{
			"questionId":    q.ID,
			"responseValue": 5,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// A stranger's session token is rejected.
	w, _ = doJSON(t, router, http.MethodPost, attemptPath+"/complete", "wrong-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Results before completion conflict.
	w, _ = doJSON(t, router, http.MethodGet, attemptPath+"/results", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Complete and read results.
	w, _ = doJSON(t, router, http.MethodPost, attemptPath+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, attemptPath+"/results", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results struct {
		Assessment struct {
			Category string `json:"category"`
		} `json:"assessment"`
		Report struct {
			ID      string `json:"id"`
			Summary string `json:"summary"`
		} `json:"report"`
		Riasec struct {
			HollandCode string `json:"hollandCode"`
		} `json:"riasec"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &results))
	assert.Equal(t, "career_interest", results.Assessment.Category)
	assert.NotEmpty(t, results.Report.ID)
	assert.Len(t, results.Riasec.HollandCode, 3)

	// Answering after completion conflicts.
	w, _ = doJSON(t, router, http.MethodPost, attemptPath+"/answer", token, gin.H{
		"questionId":    questions[0].ID,
		"responseValue": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Exports.
	w, env = doJSON(t, router, http.MethodGet, attemptPath+"/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var export struct {
		Report struct {
			Summary string `json:"summary"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &export))
	assert.Equal(t, results.Report.Summary, export.Report.Summary)

	w, _ = doJSON(t, router, http.MethodGet, attemptPath+"/export/pdf", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestAnswerValidation(t *testing.T) {
	router := newTestRouter(t)

	_, env := doJSON(t, router, http.MethodPost, "/api/assessments/riasec/start", "", nil)
	var started struct {
		SessionToken string `json:"sessionToken"`
		Attempt      struct {
			ID uint `json:"id"`
		} `json:"attempt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	answerPath := fmt.Sprintf("/api/assessments/attempts/%d/answer", started.Attempt.ID)

	// Missing fields bind-fail with 400.
	w, _ := doJSON(t, router, http.MethodPost, answerPath, started.SessionToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A value with no scoring rule is a 422.
	_, qEnv := doJSON(t, router, http.MethodGet, "/api/assessments/riasec/questions", "", nil)
	var questions []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(qEnv.Data, &questions))

	w, _ = doJSON(t, router, http.MethodPost, answerPath, started.SessionToken, gin.H{
		"questionId":    questions[0].ID,
		"responseValue": 42,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Unknown question is a 404.
	w, _ = doJSON(t, router, http.MethodPost, answerPath, started.SessionToken, gin.H{
		"questionId":    99999,
		"responseValue": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown attempt is a 404.
	w, _ = doJSON(t, router, http.MethodPost, "/api/assessments/attempts/99999/answer", started.SessionToken, gin.H{
		"questionId":    questions[0].ID,
		"responseValue": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAssessments(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/api/assessments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		Slug     string `json:"slug"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)

	slugs := make([]string, len(list))
	for i, a := range list {
		slugs[i] = a.Slug
	}
	assert.Contains(t, slugs, "riasec")
	assert.Contains(t, slugs, "personality")
	assert.Contains(t, slugs, "skills")
}
