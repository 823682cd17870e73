package scoring

import (
	"career_guidance_backend/internal/model"
	"errors"
	"fmt"
)

// ErrMissingScoringRule means a question's scoring map has no entry for the
// raw value the user submitted. Scoring aborts on it instead of defaulting to
// zero, so a miscalibrated question bank cannot silently skew results.
var ErrMissingScoringRule = errors.New("no scoring rule for response value")

// Response pairs one question with the raw value the user answered it with.
type Response struct {
	Question *model.AssessmentQuestion
	RawValue string
}

// Scoring-map entries keyed "score" apply to the question's own category;
// any other key names the category directly (RIASEC letters).
const selfCategoryKey = "score"

// Accumulate folds responses into per-category totals and response counts.
// Pure: no side effects, inputs are not modified.
func Accumulate(responses []Response) (totals map[string]float64, counts map[string]int, err error) {
	totals = make(map[string]float64)
	counts = make(map[string]int)

	for _, r := range responses {
		sm, err := r.Question.ParseScoringMap()
		if err != nil {
			return nil, nil, err
		}
		contribs, ok := sm[r.RawValue]
		if !ok {
			return nil, nil, fmt.Errorf("%w: question %d, value %q", ErrMissingScoringRule, r.Question.ID, r.RawValue)
		}
		for key, value := range contribs {
			category := key
			if key == selfCategoryKey {
				category = r.Question.Category
			}
			totals[category] += value
			counts[category]++
		}
	}
	return totals, counts, nil
}

// MaxPossible returns, per category, the highest total reachable from the
// answered questions. Used to normalize raw sums onto the 0-100 chart scale.
func MaxPossible(responses []Response) (map[string]float64, error) {
	max := make(map[string]float64)
	for _, r := range responses {
		sm, err := r.Question.ParseScoringMap()
		if err != nil {
			return nil, err
		}
		best := make(map[string]float64)
		for _, contribs := range sm {
			for key, value := range contribs {
				category := key
				if key == selfCategoryKey {
					category = r.Question.Category
				}
				if value > best[category] {
					best[category] = value
				}
			}
		}
		for category, value := range best {
			max[category] += value
		}
	}
	return max, nil
}
