package service

import "career_guidance_backend/internal/model"

// Static knowledge base backing report narratives. Keyed by RIASEC letter,
// Big Five trait or skill domain; reports only ever read from it.

var riasecInsights = map[string]model.Insight{
	"R": {
		Title:            "Realistic",
		Description:      "You prefer hands-on, practical work with tools, machines or the outdoors. Concrete results matter more to you than abstract discussion.",
		WorkEnvironments: []string{"Workshops and field sites", "Engineering and construction", "Agriculture and logistics"},
	},
	"I": {
		Title:            "Investigative",
		Description:      "You are analytical and curious, drawn to understanding how things work and solving problems through observation and research.",
		WorkEnvironments: []string{"Laboratories and research teams", "Data analysis", "Medicine and science"},
	},
	"A": {
		Title:            "Artistic",
		Description:      "You value self-expression and original work over routine. Unstructured settings that reward creativity suit you best.",
		WorkEnvironments: []string{"Design studios", "Media and publishing", "Performing arts"},
	},
	"S": {
		Title:            "Social",
		Description:      "You are energized by helping, teaching and supporting others, and you read people well.",
		WorkEnvironments: []string{"Education and training", "Healthcare and counselling", "Community services"},
	},
	"E": {
		Title:            "Enterprising",
		Description:      "You like to lead, persuade and take initiative, and you are comfortable with risk and responsibility.",
		WorkEnvironments: []string{"Sales and marketing", "Management", "Entrepreneurial ventures"},
	},
	"C": {
		Title:            "Conventional",
		Description:      "You work best with clear procedures, ordered data and well-defined responsibility, and you are reliable with detail.",
		WorkEnvironments: []string{"Finance and accounting", "Administration", "Records and compliance"},
	},
}

var riasecRecommendations = map[string][]string{
	"R": {"Explore technical or trade programs that build hands-on expertise."},
	"I": {"Look into research-oriented study programs and analytical roles."},
	"A": {"Build a portfolio of creative work and explore design-led fields."},
	"S": {"Seek volunteering or mentoring roles to test people-centred careers."},
	"E": {"Take on leadership roles in projects or student organisations."},
	"C": {"Develop skills in data handling, bookkeeping or office software."},
}

var traitInsights = map[string]model.Insight{
	"Openness": {
		Title:       "Openness",
		Description: "Reflects curiosity, imagination and appetite for new experiences. Higher scores favour varied, idea-driven work.",
	},
	"Conscientiousness": {
		Title:       "Conscientiousness",
		Description: "Reflects organisation, persistence and reliability. Higher scores favour structured roles with clear responsibility.",
	},
	"Extraversion": {
		Title:       "Extraversion",
		Description: "Reflects how much energy you draw from social settings. Higher scores favour collaborative, outward-facing roles.",
	},
	"Agreeableness": {
		Title:       "Agreeableness",
		Description: "Reflects warmth and cooperativeness. Higher scores favour supportive, team-oriented environments.",
	},
	"Neuroticism": {
		Title:       "Neuroticism",
		Description: "Reflects sensitivity to stress. Lower scores suggest comfort with pressure and tight deadlines.",
	},
}

var skillRecommendations = map[int]string{
	1: "Start with foundational courses and guided practice in this area.",
	2: "Keep practising with structured exercises and seek regular feedback.",
	3: "Take on stretch tasks that push this skill beyond the comfortable.",
	4: "Mentor others and tackle complex, open-ended problems.",
	5: "Consider roles or certifications where this strength is central.",
}
