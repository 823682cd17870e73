package scoring

import "math"

// BigFiveTraits in fixed display order.
var BigFiveTraits = []string{
	"Openness",
	"Conscientiousness",
	"Extraversion",
	"Agreeableness",
	"Neuroticism",
}

// Work-style thresholds on normalized (0-100) trait scores.
const (
	highTrait = 70
	lowTrait  = 30
)

type PersonalityScores struct {
	// Normalized holds 0-100 scores for answered traits only. A trait with no
	// responses is simply absent, never a zero from a division guard.
	Normalized map[string]int
	WorkStyle  []string
}

// ScorePersonality averages each trait's contribution scores (question counts
// per trait vary, so averaging, not summing) and normalizes the 0-5 average
// via round(avg/5*100). Reverse-scored items are already encoded in the
// question scoring maps; the scorer never special-cases them.
func ScorePersonality(responses []Response) (*PersonalityScores, error) {
	totals, counts, err := Accumulate(responses)
	if err != nil {
		return nil, err
	}

	normalized := make(map[string]int)
	for _, trait := range BigFiveTraits {
		n := counts[trait]
		if n == 0 {
			continue
		}
		avg := totals[trait] / float64(n)
		normalized[trait] = int(math.Round(avg / 5 * 100))
	}

	return &PersonalityScores{
		Normalized: normalized,
		WorkStyle:  workStylePreferences(normalized),
	}, nil
}

// workStylePreferences derives categorical labels from fixed threshold rules:
// >70 counts as high, <30 as low.
func workStylePreferences(normalized map[string]int) []string {
	var prefs []string

	if score, ok := normalized["Conscientiousness"]; ok && score > highTrait {
		prefs = append(prefs, "prefers structured, well-planned work")
	}
	if score, ok := normalized["Extraversion"]; ok {
		if score > highTrait {
			prefs = append(prefs, "thrives in collaborative, people-facing settings")
		} else if score < lowTrait {
			prefs = append(prefs, "works best independently with focused time")
		}
	}
	if score, ok := normalized["Openness"]; ok && score > highTrait {
		prefs = append(prefs, "drawn to exploratory, creative problem solving")
	}
	if score, ok := normalized["Agreeableness"]; ok && score > highTrait {
		prefs = append(prefs, "suited to supportive, team-oriented roles")
	}
	if score, ok := normalized["Neuroticism"]; ok && score < lowTrait {
		prefs = append(prefs, "stays calm under pressure and deadlines")
	}

	return prefs
}
