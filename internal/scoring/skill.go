package scoring

import "math"

// ProficiencyLabels maps the 1-5 proficiency level to its display label.
var ProficiencyLabels = map[int]string{
	1: "Novice",
	2: "Beginner",
	3: "Intermediate",
	4: "Advanced",
	5: "Expert",
}

type SkillScore struct {
	Domain     string
	Level      int // 1..5, rounded average of the domain's ratings
	Normalized int // level/5*100
	Label      string
}

// ScoreSkills produces one proficiency record per answered domain, in the
// order domains first appear in the responses. Multiple responses for one
// domain average, consistent with the personality scorer.
func ScoreSkills(responses []Response) ([]SkillScore, error) {
	totals, counts, err := Accumulate(responses)
	if err != nil {
		return nil, err
	}

	var order []string
	seen := make(map[string]bool)
	for _, r := range responses {
		domain := r.Question.Category
		if !seen[domain] {
			seen[domain] = true
			order = append(order, domain)
		}
	}

	results := make([]SkillScore, 0, len(order))
	for _, domain := range order {
		n := counts[domain]
		if n == 0 {
			continue
		}
		avg := totals[domain] / float64(n)
		level := int(math.Round(avg))
		if level < 1 {
			level = 1
		}
		if level > 5 {
			level = 5
		}
		results = append(results, SkillScore{
			Domain:     domain,
			Level:      level,
			Normalized: level * 20,
			Label:      ProficiencyLabels[level],
		})
	}
	return results, nil
}
