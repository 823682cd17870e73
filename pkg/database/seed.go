package database

import (
	"career_guidance_backend/internal/model"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// letterMap builds the RIASEC rating-scale scoring map: a 1-5 rating
// contributes rating-1 points to the question's letter.
func letterMap(letter string) json.RawMessage {
	m := make(map[string]map[string]float64, 5)
	for rating := 1; rating <= 5; rating++ {
		m[fmt.Sprint(rating)] = map[string]float64{letter: float64(rating - 1)}
	}
	raw, _ := json.Marshal(m)
	return raw
}

// ratingMap builds the plain 1-5 scale, optionally reverse-scored.
func ratingMap(reverse bool) json.RawMessage {
	m := make(map[string]map[string]float64, 5)
	for rating := 1; rating <= 5; rating++ {
		score := float64(rating)
		if reverse {
			score = float64(6 - rating)
		}
		m[fmt.Sprint(rating)] = map[string]float64{"score": score}
	}
	raw, _ := json.Marshal(m)
	return raw
}

type seedQuestion struct {
	content    string
	category   string
	scoringMap json.RawMessage
}

func seedAssessments(db *gorm.DB) error {
	banks := []struct {
		assessment model.AssessmentType
		questions  []seedQuestion
	}{
		{
			assessment: model.AssessmentType{
				Slug:        "riasec",
				Name:        "Career Interest Profiler",
				Description: "Holland Code (RIASEC) interest inventory",
				Category:    model.CategoryCareerInterest,
				IsActive:    true,
			},
			questions: []seedQuestion{
				{"I enjoy building things with my hands", "Realistic", letterMap("R")},
				{"I like working with tools, machines or equipment", "Realistic", letterMap("R")},
				{"I enjoy solving math or science problems", "Investigative", letterMap("I")},
				{"I like researching how things work", "Investigative", letterMap("I")},
				{"I enjoy creative writing, music or design", "Artistic", letterMap("A")},
				{"I like expressing myself through art", "Artistic", letterMap("A")},
				{"I enjoy helping people with their problems", "Social", letterMap("S")},
				{"I like teaching or training others", "Social", letterMap("S")},
				{"I enjoy leading a team toward a goal", "Enterprising", letterMap("E")},
				{"I like persuading or selling ideas to others", "Enterprising", letterMap("E")},
				{"I enjoy organizing files, records or data", "Conventional", letterMap("C")},
				{"I like following clear procedures and checklists", "Conventional", letterMap("C")},
			},
		},
		{
			assessment: model.AssessmentType{
				Slug:        "personality",
				Name:        "Work Personality Profile",
				Description: "Big Five personality inventory",
				Category:    model.CategoryPersonality,
				IsActive:    true,
			},
			questions: []seedQuestion{
				{"I am curious about many different things", "Openness", ratingMap(false)},
				{"I have a vivid imagination", "Openness", ratingMap(false)},
				{"I am always prepared and pay attention to detail", "Conscientiousness", ratingMap(false)},
				{"I follow a schedule and get chores done right away", "Conscientiousness", ratingMap(false)},
				{"I am the life of the party", "Extraversion", ratingMap(false)},
				{"I feel comfortable around people", "Extraversion", ratingMap(false)},
				{"I sympathize with others' feelings", "Agreeableness", ratingMap(false)},
				{"I take time out for others", "Agreeableness", ratingMap(false)},
				{"I get stressed out easily", "Neuroticism", ratingMap(false)},
				{"I am relaxed most of the time", "Neuroticism", ratingMap(true)},
			},
		},
		{
			assessment: model.AssessmentType{
				Slug:        "skills",
				Name:        "Skills Self-Assessment",
				Description: "Self-rated proficiency across core skill domains",
				Category:    model.CategorySkills,
				IsActive:    true,
			},
			questions: []seedQuestion{
				{"Rate your communication skills", "Communication", ratingMap(false)},
				{"Rate your problem solving skills", "Problem Solving", ratingMap(false)},
				{"Rate your teamwork skills", "Teamwork", ratingMap(false)},
				{"Rate your digital literacy", "Digital Literacy", ratingMap(false)},
				{"Rate your leadership skills", "Leadership", ratingMap(false)},
			},
		},
	}

	for _, bank := range banks {
		assessment := bank.assessment
		if err := db.Create(&assessment).Error; err != nil {
			return err
		}
		for i, sq := range bank.questions {
			q := model.AssessmentQuestion{
				AssessmentTypeID: assessment.ID,
				QuestionType:     "rating_scale",
				Content:          sq.content,
				Category:         sq.category,
				Order:            i + 1,
				ScoringMap:       sq.scoringMap,
			}
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
