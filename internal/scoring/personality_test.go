package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratingMap = `{"1":{"score":1},"2":{"score":2},"3":{"score":3},"4":{"score":4},"5":{"score":5}}`

// 5 maps to 1, 1 maps to 5 and so on.
const reverseRatingMap = `{"1":{"score":5},"2":{"score":4},"3":{"score":3},"4":{"score":2},"5":{"score":1}}`

func traitResponses(trait string, values ...string) []Response {
	responses := make([]Response, 0, len(values))
	for i, value := range values {
		responses = append(responses, Response{
			Question: question(uint(i+1), trait, ratingMap),
			RawValue: value,
		})
	}
	return responses
}

func TestScorePersonalityAveragesAndNormalizes(t *testing.T) {
	// Two responses, raw 5 and 3: avg 4.0 -> round(4/5*100) = 80.
	scores, err := ScorePersonality(traitResponses("Openness", "5", "3"))
	require.NoError(t, err)

	assert.Equal(t, 80, scores.Normalized["Openness"])
}

func TestScorePersonalityUnansweredTraitAbsent(t *testing.T) {
	scores, err := ScorePersonality(traitResponses("Extraversion", "4"))
	require.NoError(t, err)

	assert.Contains(t, scores.Normalized, "Extraversion")
	assert.NotContains(t, scores.Normalized, "Openness")
	assert.NotContains(t, scores.Normalized, "Neuroticism")
}

func TestScorePersonalityNoResponses(t *testing.T) {
	scores, err := ScorePersonality(nil)
	require.NoError(t, err)

	assert.Empty(t, scores.Normalized)
	assert.Empty(t, scores.WorkStyle)
}

func TestScorePersonalityBounds(t *testing.T) {
	var responses []Response
	for i, trait := range BigFiveTraits {
		responses = append(responses, Response{
			Question: question(uint(i+1), trait, ratingMap),
			RawValue: fmt.Sprint(i%5 + 1),
		})
	}

	scores, err := ScorePersonality(responses)
	require.NoError(t, err)
	require.Len(t, scores.Normalized, len(BigFiveTraits))
	for trait, score := range scores.Normalized {
		assert.GreaterOrEqual(t, score, 0, trait)
		assert.LessOrEqual(t, score, 100, trait)
	}
}

func TestScorePersonalityReverseScoredItem(t *testing.T) {
	responses := []Response{
		{Question: question(1, "Neuroticism", ratingMap), RawValue: "1"},
		{Question: question(2, "Neuroticism", reverseRatingMap), RawValue: "5"},
	}

	scores, err := ScorePersonality(responses)
	require.NoError(t, err)

	// Both items contribute 1: avg 1.0 -> 20.
	assert.Equal(t, 20, scores.Normalized["Neuroticism"])
}

func TestWorkStylePreferences(t *testing.T) {
	tests := []struct {
		name       string
		normalized map[string]int
		want       string
	}{
		{"high conscientiousness", map[string]int{"Conscientiousness": 80}, "prefers structured, well-planned work"},
		{"high extraversion", map[string]int{"Extraversion": 90}, "thrives in collaborative, people-facing settings"},
		{"low extraversion", map[string]int{"Extraversion": 20}, "works best independently with focused time"},
		{"high openness", map[string]int{"Openness": 75}, "drawn to exploratory, creative problem solving"},
		{"high agreeableness", map[string]int{"Agreeableness": 71}, "suited to supportive, team-oriented roles"},
		{"low neuroticism", map[string]int{"Neuroticism": 10}, "stays calm under pressure and deadlines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, workStylePreferences(tt.normalized), tt.want)
		})
	}

	// Exactly at a threshold is not "high" or "low".
	assert.Empty(t, workStylePreferences(map[string]int{
		"Conscientiousness": 70,
		"Extraversion":      30,
		"Neuroticism":       30,
	}))
}
