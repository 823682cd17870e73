package scoring

import (
	"career_guidance_backend/internal/model"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id uint, category, scoringMap string) *model.AssessmentQuestion {
	q := &model.AssessmentQuestion{
		Category:   category,
		ScoringMap: json.RawMessage(scoringMap),
	}
	q.ID = id
	return q
}

func TestAccumulateLetterContributions(t *testing.T) {
	responses := []Response{
		{Question: question(1, "Realistic", `{"5":{"R":4},"1":{"R":0}}`), RawValue: "5"},
		{Question: question(2, "Realistic", `{"5":{"R":4},"1":{"R":0}}`), RawValue: "5"},
		{Question: question(3, "Investigative", `{"5":{"I":3}}`), RawValue: "5"},
	}

	totals, counts, err := Accumulate(responses)
	require.NoError(t, err)

	assert.Equal(t, 8.0, totals["R"])
	assert.Equal(t, 3.0, totals["I"])
	assert.Equal(t, 2, counts["R"])
	assert.Equal(t, 1, counts["I"])
}

func TestAccumulateScoreKeyUsesQuestionCategory(t *testing.T) {
	responses := []Response{
		{Question: question(1, "Openness", `{"5":{"score":5},"3":{"score":3}}`), RawValue: "5"},
		{Question: question(2, "Openness", `{"5":{"score":5},"3":{"score":3}}`), RawValue: "3"},
	}

	totals, counts, err := Accumulate(responses)
	require.NoError(t, err)

	assert.Equal(t, 8.0, totals["Openness"])
	assert.Equal(t, 2, counts["Openness"])
	assert.NotContains(t, totals, "score")
}

func TestAccumulateMissingScoringRule(t *testing.T) {
	responses := []Response{
		{Question: question(7, "Realistic", `{"5":{"R":4}}`), RawValue: "2"},
	}

	_, _, err := Accumulate(responses)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingScoringRule)
	assert.Contains(t, err.Error(), "question 7")
}

func TestAccumulateEmptyScoringMap(t *testing.T) {
	q := &model.AssessmentQuestion{Category: "Realistic"}
	q.ID = 9

	_, _, err := Accumulate([]Response{{Question: q, RawValue: "5"}})
	require.Error(t, err)
}

func TestMaxPossible(t *testing.T) {
	responses := []Response{
		{Question: question(1, "Realistic", `{"1":{"R":0},"3":{"R":2},"5":{"R":4}}`), RawValue: "3"},
		{Question: question(2, "Realistic", `{"1":{"R":0},"5":{"R":4}}`), RawValue: "1"},
		{Question: question(3, "Coding", `{"5":{"score":5}}`), RawValue: "5"},
	}

	max, err := MaxPossible(responses)
	require.NoError(t, err)

	assert.Equal(t, 8.0, max["R"])
	assert.Equal(t, 5.0, max["Coding"])
}
