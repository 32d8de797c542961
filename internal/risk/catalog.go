package risk

// Catalog resolves message keys to display text.
type Catalog map[string]string

// Text returns the text for key, or the key itself when it is unknown.
func (c Catalog) Text(key string) string {
	if s, ok := c[key]; ok {
		return s
	}
	return key
}

// Render resolves every key in order.
func (c Catalog) Render(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = c.Text(k)
	}
	return out
}

// Disclaimer is attached to every rendered report.
const Disclaimer = "This screening is educational and not a medical diagnosis. " +
	"Discuss any concerns with a qualified healthcare professional."

// DefaultCatalog returns the English messages.
func DefaultCatalog() Catalog {
	return Catalog{
		"strength.memory":       "Your memory performance is strong.",
		"strength.attention":    "You sustain attention well.",
		"strength.language":     "Your language abilities appear well preserved.",
		"strength.visuospatial": "Your visuospatial skills are strong.",
		"strength.executive":    "You plan and switch between tasks efficiently.",
		"strength.orientation":  "You are well oriented to time and place.",
		KeyStrengthLowSymptoms:  "You reported few day-to-day cognitive symptoms.",
		KeyStrengthEducation:    "Higher education is associated with greater cognitive reserve.",
		KeyStrengthGeneral:      "You completed the full screening, a good step for your brain health.",

		"concern.memory":       "Memory results were lower than expected.",
		"concern.attention":    "Sustaining attention was difficult during the test.",
		"concern.language":     "You reported difficulties with word finding or conversation.",
		"concern.visuospatial": "You reported difficulties judging distances or finding your way.",
		"concern.executive":    "Planning and task switching were slower than expected.",
		"concern.orientation":  "You reported confusion about dates or places.",
		KeyConcernSymptoms:     "You reported a high number of cognitive symptoms.",
		KeyConcernCardio:       "Cardiovascular conditions can affect brain health.",

		"rec.physical_activity":  "Aim for at least 150 minutes of moderate exercise each week.",
		"rec.mental_stimulation": "Keep your mind active with reading, puzzles or learning something new.",
		"rec.social_engagement":  "Stay socially connected with friends, family and community.",

		"rec.high.consult_specialist":       "Consider talking with a doctor or memory specialist soon.",
		"rec.high.comprehensive_evaluation": "Ask about a comprehensive cognitive evaluation.",
		"rec.moderate.monitor":              "Repeat this screening in a few months to track changes.",
		"rec.moderate.follow_up":            "Mention these results at your next routine check-up.",

		"rec.domain.memory":       "Try memory exercises such as recalling shopping lists.",
		"rec.domain.attention":    "Practice focused attention with mindfulness or timed tasks.",
		"rec.domain.language":     "Read aloud and play word games to exercise language skills.",
		"rec.domain.visuospatial": "Try jigsaw puzzles, drawing or map reading.",
		"rec.domain.executive":    "Practice planning activities and strategy games.",
		"rec.domain.orientation":  "Use calendars and daily routines to stay oriented.",

		"rec.age.regular_checkups":  "Schedule regular health check-ups including blood pressure.",
		"rec.age.medication_review": "Ask your doctor to review medications that may affect memory.",
	}
}
