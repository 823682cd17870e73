package scoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riasecResponses(values map[string]string) []Response {
	var responses []Response
	var id uint = 1
	for _, letter := range RiasecOrder {
		value, ok := values[letter]
		if !ok {
			continue
		}
		sm := fmt.Sprintf(`{"1":{"%s":0},"2":{"%s":1},"3":{"%s":2},"4":{"%s":3},"5":{"%s":4}}`,
			letter, letter, letter, letter, letter)
		responses = append(responses, Response{
			Question: question(id, RiasecNames[letter], sm),
			RawValue: value,
		})
		id++
	}
	return responses
}

func TestScoreRiasec(t *testing.T) {
	scores, err := ScoreRiasec(riasecResponses(map[string]string{
		"R": "5", "I": "4", "A": "3", "S": "2", "E": "1", "C": "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, 4, scores.Scores["R"])
	assert.Equal(t, 3, scores.Scores["I"])
	assert.Equal(t, 2, scores.Scores["A"])
	assert.Equal(t, "RIA", scores.HollandCode)

	assert.Len(t, scores.HollandCode, 3)
	for _, letter := range RiasecOrder {
		assert.GreaterOrEqual(t, scores.Scores[letter], 0)
		assert.LessOrEqual(t, strings.Count(scores.HollandCode, letter), 1)
	}
}

func TestHollandCodeNoRepeatedLetters(t *testing.T) {
	scores, err := ScoreRiasec(riasecResponses(map[string]string{
		"R": "3", "I": "5", "A": "5", "S": "1", "E": "2", "C": "4",
	}))
	require.NoError(t, err)

	seen := map[rune]bool{}
	for _, r := range scores.HollandCode {
		assert.False(t, seen[r], "letter %c repeated in %s", r, scores.HollandCode)
		assert.Contains(t, "RIASEC", string(r))
		seen[r] = true
	}
}

func TestHollandCodeTieBreakCanonicalOrder(t *testing.T) {
	// R and I tie at the top; the third slot falls to A, the lowest-index
	// zero-score letter in canonical order.
	scores, err := ScoreRiasec(riasecResponses(map[string]string{
		"R": "5", "I": "5", "A": "1", "S": "1", "E": "1", "C": "1",
	}))
	require.NoError(t, err)

	first2 := scores.HollandCode[:2]
	assert.Contains(t, []string{"RI", "IR"}, first2)
	assert.Equal(t, byte('A'), scores.HollandCode[2])
}

func TestHollandCodeAllZeroScores(t *testing.T) {
	scores, err := ScoreRiasec(riasecResponses(map[string]string{
		"R": "1", "I": "1", "A": "1", "S": "1", "E": "1", "C": "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "RIA", scores.HollandCode)
	for _, letter := range RiasecOrder {
		assert.Zero(t, scores.Scores[letter])
	}
}

func TestRiasecNormalizedBounds(t *testing.T) {
	scores, err := ScoreRiasec(riasecResponses(map[string]string{
		"R": "5", "I": "3", "A": "1", "S": "4", "E": "2", "C": "5",
	}))
	require.NoError(t, err)

	assert.Equal(t, 100, scores.Normalized["R"])
	for _, letter := range RiasecOrder {
		assert.GreaterOrEqual(t, scores.Normalized[letter], 0)
		assert.LessOrEqual(t, scores.Normalized[letter], 100)
	}
}

func TestRankedLettersMatchesHollandCode(t *testing.T) {
	scores, err := ScoreRiasec(riasecResponses(map[string]string{
		"R": "1", "I": "5", "A": "2", "S": "4", "E": "3", "C": "1",
	}))
	require.NoError(t, err)

	ranked := scores.RankedLetters()
	assert.Len(t, ranked, 6)
	assert.Equal(t, scores.HollandCode, strings.Join(ranked[:3], ""))
}
