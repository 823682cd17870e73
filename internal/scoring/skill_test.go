package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skillResponses(pairs ...[2]string) []Response {
	responses := make([]Response, 0, len(pairs))
	for i, p := range pairs {
		responses = append(responses, Response{
			Question: question(uint(i+1), p[0], ratingMap),
			RawValue: p[1],
		})
	}
	return responses
}

func TestScoreSkillsSingleResponse(t *testing.T) {
	results, err := ScoreSkills(skillResponses([2]string{"Communication", "5"}))
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Communication", results[0].Domain)
	assert.Equal(t, 5, results[0].Level)
	assert.Equal(t, 100, results[0].Normalized)
	assert.Equal(t, "Expert", results[0].Label)
}

func TestScoreSkillsAveragesPerDomain(t *testing.T) {
	results, err := ScoreSkills(skillResponses(
		[2]string{"Problem Solving", "3"},
		[2]string{"Problem Solving", "4"},
	))
	require.NoError(t, err)
	require.Len(t, results, 1)

	// avg 3.5 rounds up to 4.
	assert.Equal(t, 4, results[0].Level)
	assert.Equal(t, 80, results[0].Normalized)
	assert.Equal(t, "Advanced", results[0].Label)
}

func TestScoreSkillsPreservesFirstSeenOrder(t *testing.T) {
	results, err := ScoreSkills(skillResponses(
		[2]string{"Teamwork", "2"},
		[2]string{"Coding", "4"},
		[2]string{"Teamwork", "2"},
		[2]string{"Analysis", "1"},
	))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Teamwork", results[0].Domain)
	assert.Equal(t, "Coding", results[1].Domain)
	assert.Equal(t, "Analysis", results[2].Domain)
}

func TestScoreSkillsLabels(t *testing.T) {
	for level, label := range map[int]string{
		1: "Novice", 2: "Beginner", 3: "Intermediate", 4: "Advanced", 5: "Expert",
	} {
		results, err := ScoreSkills(skillResponses([2]string{"Writing", itoa(level)}))
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, label, results[0].Label)
		assert.Equal(t, level*20, results[0].Normalized)
	}
}

func itoa(n int) string {
	return string(rune('0' + n))
}
