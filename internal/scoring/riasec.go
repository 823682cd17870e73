package scoring

import (
	"math"
	"sort"
	"strings"
)

// RiasecOrder is the canonical letter sequence. It doubles as the tie-break
// order when deriving the Holland code and as the fixed chart display order.
var RiasecOrder = []string{"R", "I", "A", "S", "E", "C"}

// RiasecNames maps letters to the full dimension names used in reports.
var RiasecNames = map[string]string{
	"R": "Realistic",
	"I": "Investigative",
	"A": "Artistic",
	"S": "Social",
	"E": "Enterprising",
	"C": "Conventional",
}

type RiasecScores struct {
	Scores      map[string]int // letter -> raw integer score
	Normalized  map[string]int // letter -> 0..100
	HollandCode string         // 3 ranked letters
}

// ScoreRiasec accumulates integer scores for the six letters and derives the
// Holland code: letters sorted by score descending, canonical order breaking
// ties. All-zero input still yields a deterministic "RIA".
func ScoreRiasec(responses []Response) (*RiasecScores, error) {
	totals, _, err := Accumulate(responses)
	if err != nil {
		return nil, err
	}
	max, err := MaxPossible(responses)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]int, len(RiasecOrder))
	normalized := make(map[string]int, len(RiasecOrder))
	for _, letter := range RiasecOrder {
		score := int(math.Round(totals[letter]))
		scores[letter] = score
		if m := max[letter]; m > 0 {
			normalized[letter] = int(math.Round(totals[letter] / m * 100))
		} else if score > 100 {
			normalized[letter] = 100
		} else {
			normalized[letter] = score
		}
	}

	return &RiasecScores{
		Scores:      scores,
		Normalized:  normalized,
		HollandCode: hollandCode(scores),
	}, nil
}

func hollandCode(scores map[string]int) string {
	ranked := make([]string, len(RiasecOrder))
	copy(ranked, RiasecOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return strings.Join(ranked[:3], "")
}

// RankedLetters returns all six letters in Holland-code order, used for the
// report's ordered top-traits list.
func (s *RiasecScores) RankedLetters() []string {
	ranked := make([]string, len(RiasecOrder))
	copy(ranked, RiasecOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.Scores[ranked[i]] > s.Scores[ranked[j]]
	})
	return ranked
}
