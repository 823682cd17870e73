package service

import (
	"context"
	"encoding/json"
	"testing"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSONShape(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "riasec")
	env.answerAll(t, attempt, "riasec", 5)
	_, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	export, err := env.Export.ExportJSON(attempt.ID)
	require.NoError(t, err)

	assert.Equal(t, attempt.ID, export.Attempt.ID)
	assert.NotNil(t, export.Attempt.CompletedAt)
	assert.Equal(t, "riasec", export.Assessment.Slug)
	assert.Equal(t, model.CategoryCareerInterest, export.Assessment.Category)
	assert.NotEmpty(t, export.Report.ID)
	assert.NotEmpty(t, export.Report.Summary)

	// The export marshals with stable top-level keys.
	raw, err := json.Marshal(export)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "attempt")
	assert.Contains(t, decoded, "assessment")
	assert.Contains(t, decoded, "report")

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["report"], &report))
	for _, key := range []string{"id", "summary", "top_traits", "insights", "recommendations", "visualization_data"} {
		assert.Contains(t, report, key)
	}
}

func TestExportBeforeCompletion(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "riasec")

	_, err := env.Export.ExportJSON(attempt.ID)
	assert.ErrorIs(t, err, util.ErrAttemptNotCompleted)

	_, err = env.Export.ExportPDF(context.Background(), attempt.ID)
	assert.ErrorIs(t, err, util.ErrAttemptNotCompleted)
}

func TestExportPDFRiasec(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "riasec")
	env.answerAll(t, attempt, "riasec", 5)
	_, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	out, err := env.Export.ExportPDF(context.Background(), attempt.ID)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestExportPDFSkills(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "skills")
	env.answerAll(t, attempt, "skills", 4)
	_, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	out, err := env.Export.ExportPDF(context.Background(), attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestExportUnknownAttempt(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Export.ExportJSON(9999)
	assert.ErrorIs(t, err, util.ErrAttemptNotFound)
}
