package service

import (
	"encoding/json"
	"testing"

	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequiresCompletedAttempt(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "riasec")

	_, err := env.Reports.Generate(attempt)
	assert.ErrorIs(t, err, util.ErrAttemptNotCompleted)
}

func TestPersonalityReport(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "personality")
	env.answerAll(t, attempt, "personality", 5)

	report, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	result, err := env.Attempts.FindPersonalityResult(attempt.ID)
	require.NoError(t, err)

	// Four traits score 5+5 -> 100; Neuroticism has one reverse-scored
	// question, so 5+1 -> average 3 -> 60.
	require.NotNil(t, result.Openness)
	assert.Equal(t, 100, *result.Openness)
	require.NotNil(t, result.Conscientiousness)
	assert.Equal(t, 100, *result.Conscientiousness)
	require.NotNil(t, result.Extraversion)
	assert.Equal(t, 100, *result.Extraversion)
	require.NotNil(t, result.Agreeableness)
	assert.Equal(t, 100, *result.Agreeableness)
	require.NotNil(t, result.Neuroticism)
	assert.Equal(t, 60, *result.Neuroticism)

	var workStyle []string
	require.NoError(t, json.Unmarshal(result.WorkStyle, &workStyle))
	assert.Contains(t, workStyle, "prefers structured, well-planned work")
	assert.Contains(t, workStyle, "thrives in collaborative, people-facing settings")
	assert.NotContains(t, workStyle, "stays calm under pressure and deadlines")

	var topTraits []string
	require.NoError(t, json.Unmarshal(report.TopTraits, &topTraits))
	require.Len(t, topTraits, 3)
	assert.Equal(t, "Openness", topTraits[0])

	var viz model.VisualizationData
	require.NoError(t, json.Unmarshal(report.VisualizationData, &viz))
	assert.Equal(t, "bar", viz.Type)
	assert.Len(t, viz.Labels, 5)
}

func TestPartialPersonalityLeavesTraitsNil(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "personality")

	questions, err := env.Assessments.ListQuestions("personality")
	require.NoError(t, err)

	// Answer only the two Openness questions.
	for _, q := range questions {
		if q.Category == "Openness" {
			_, err := env.Assessments.SubmitAnswer(attempt.ID, AnswerRequest{QuestionID: q.ID, ResponseValue: 4})
			require.NoError(t, err)
		}
	}

	_, err = env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	result, err := env.Attempts.FindPersonalityResult(attempt.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Openness)
	assert.Equal(t, 80, *result.Openness)
	assert.Nil(t, result.Conscientiousness, "unanswered traits must stay nil, not zero")
	assert.Nil(t, result.Neuroticism)
}

func TestSkillsReport(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "skills")

	questions, err := env.Assessments.ListQuestions("skills")
	require.NoError(t, err)
	require.Len(t, questions, 5)

	values := []int{5, 4, 3, 2, 1}
	for i, q := range questions {
		_, err := env.Assessments.SubmitAnswer(attempt.ID, AnswerRequest{QuestionID: q.ID, ResponseValue: values[i]})
		require.NoError(t, err)
	}

	report, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	rows, err := env.Attempts.ListSkillProficiencies(attempt.ID)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	byDomain := make(map[string]model.SkillProficiency, len(rows))
	for _, row := range rows {
		byDomain[row.Domain] = row
	}

	comm := byDomain["Communication"]
	assert.Equal(t, 5, comm.ProficiencyLevel)
	assert.Equal(t, 100, comm.NormalizedScore)
	assert.Equal(t, "Expert", comm.Label)

	lead := byDomain["Leadership"]
	assert.Equal(t, 1, lead.ProficiencyLevel)
	assert.Equal(t, 20, lead.NormalizedScore)
	assert.Equal(t, "Novice", lead.Label)

	var topTraits []string
	require.NoError(t, json.Unmarshal(report.TopTraits, &topTraits))
	require.Len(t, topTraits, 3)
	assert.Equal(t, "Communication", topTraits[0])

	// Chart data stays on the 1-5 scale.
	var viz model.VisualizationData
	require.NoError(t, json.Unmarshal(report.VisualizationData, &viz))
	require.Len(t, viz.Datasets, 1)
	assert.Equal(t, float64(5), viz.Datasets[0].Data[0])
	assert.Contains(t, report.Summary, "Communication")
}

func TestRegenerateIsDeterministic(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "riasec")
	env.answerAll(t, attempt, "riasec", 3)

	first, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	reloaded, err := env.Assessments.GetAttempt(attempt.ID)
	require.NoError(t, err)
	second, err := env.Reports.Generate(reloaded)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "regeneration must overwrite, not duplicate")
	assert.Equal(t, first.Summary, second.Summary)
	assert.JSONEq(t, string(first.TopTraits), string(second.TopTraits))
	assert.JSONEq(t, string(first.VisualizationData), string(second.VisualizationData))

	firstScores := reloaded.NormalizedScores
	regen, err := env.Assessments.GetAttempt(attempt.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstScores), string(regen.NormalizedScores))
}

func TestNormalizedScoresPersisted(t *testing.T) {
	env := newTestEnv(t)
	attempt := env.startAttempt(t, "riasec")
	env.answerAll(t, attempt, "riasec", 5)

	_, err := env.Assessments.CompleteAttempt(attempt.ID)
	require.NoError(t, err)

	reloaded, err := env.Assessments.GetAttempt(attempt.ID)
	require.NoError(t, err)

	var normalized map[string]float64
	require.NoError(t, json.Unmarshal(reloaded.NormalizedScores, &normalized))
	require.Len(t, normalized, 6)
	assert.Equal(t, float64(100), normalized["Realistic"])
	assert.Equal(t, float64(100), normalized["Conventional"])
}
