package risk

import (
	"strings"

	"github.com/abhisek/cogscreen/internal/domain"
)

// Rule thresholds.
const (
	StrengthDomainMin      = 80.0
	ConcernDomainBelow     = 60.0
	RecommendDomainBelow   = 70.0
	LowSymptomsMax         = 3
	HighSymptomsAbove      = 12
	AgeRecommendationAbove = 65

	MaxRecommendations  = 6
	maxDomainRecs       = 3
	maxAgeRecs          = 2
	cardiovascularMatch = "cardiovascular"
)

// Message keys.
const (
	KeyStrengthLowSymptoms = "strength.low_symptoms"
	KeyStrengthEducation   = "strength.education"
	KeyStrengthGeneral     = "strength.general"
	KeyConcernSymptoms     = "concern.symptoms"
	KeyConcernCardio       = "concern.cardiovascular"
)

var universalRecs = []string{
	"rec.physical_activity",
	"rec.mental_stimulation",
	"rec.social_engagement",
}

var tierRecs = map[Level][]string{
	LevelHigh: {
		"rec.high.consult_specialist",
		"rec.high.comprehensive_evaluation",
	},
	LevelModerate: {
		"rec.moderate.monitor",
		"rec.moderate.follow_up",
	},
}

var ageRecs = []string{
	"rec.age.regular_checkups",
	"rec.age.medication_review",
}

// StrengthKey returns the strength message key for a domain.
func StrengthKey(d domain.Domain) string { return "strength." + string(d) }

// ConcernKey returns the concern message key for a domain.
func ConcernKey(d domain.Domain) string { return "concern." + string(d) }

// RecommendationKey returns the recommendation message key for a domain.
func RecommendationKey(d domain.Domain) string { return "rec.domain." + string(d) }

// Strengths lists strength keys. It never returns an empty list.
func Strengths(in Input) []string {
	var out []string
	for _, d := range domain.All() {
		if v, ok := in.DomainScores[d]; ok && v >= StrengthDomainMin {
			out = append(out, StrengthKey(d))
		}
	}
	if in.SymptomTotal <= LowSymptomsMax {
		out = append(out, KeyStrengthLowSymptoms)
	}
	if in.HigherEducation {
		out = append(out, KeyStrengthEducation)
	}
	if len(out) == 0 {
		out = append(out, KeyStrengthGeneral)
	}
	return out
}

// Concerns lists concern keys. The list may be empty.
func Concerns(in Input) []string {
	out := []string{}
	for _, d := range domain.All() {
		if v, ok := in.DomainScores[d]; ok && v < ConcernDomainBelow {
			out = append(out, ConcernKey(d))
		}
	}
	if in.SymptomTotal > HighSymptomsAbove {
		out = append(out, KeyConcernSymptoms)
	}
	if hasCardiovascular(in.HealthConditions) {
		out = append(out, KeyConcernCardio)
	}
	return out
}

func hasCardiovascular(conditions []string) bool {
	for _, c := range conditions {
		if strings.Contains(strings.ToLower(c), cardiovascularMatch) {
			return true
		}
	}
	return false
}

// Recommendations lists recommendation keys in generation order
// (universal, tier, domain, age) truncated to MaxRecommendations.
func Recommendations(in Input, level Level) []string {
	out := append([]string(nil), universalRecs...)
	out = append(out, tierRecs[level]...)

	domainRecs := 0
	for _, d := range domain.All() {
		if domainRecs == maxDomainRecs {
			break
		}
		if v, ok := in.DomainScores[d]; ok && v < RecommendDomainBelow {
			out = append(out, RecommendationKey(d))
			domainRecs++
		}
	}

	if in.Age > AgeRecommendationAbove {
		out = append(out, ageRecs[:maxAgeRecs]...)
	}

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
