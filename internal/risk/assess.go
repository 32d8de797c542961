package risk

import "github.com/abhisek/cogscreen/internal/domain"

// Input carries what classification reads beyond the composite score.
type Input struct {
	DomainScores     map[domain.Domain]float64
	Overall          int
	SymptomTotal     int
	Age              int
	HigherEducation  bool
	HealthConditions []string
}

// Profile is the derived cognitive profile. It is recomputed on every
// analysis and holds message keys, not display text.
type Profile struct {
	DomainScores    map[domain.Domain]float64 `json:"domainScores"`
	OverallScore    int                       `json:"overallScore"`
	RiskLevel       Level                     `json:"riskLevel"`
	Strengths       []string                  `json:"strengths"`
	Concerns        []string                  `json:"concerns"`
	Recommendations []string                  `json:"recommendations"`
}

// Evaluate classifies in and builds the profile.
func Evaluate(in Input, th Thresholds) Profile {
	level := Classify(in.Overall, th)

	scores := make(map[domain.Domain]float64, len(in.DomainScores))
	for d, v := range in.DomainScores {
		scores[d] = v
	}

	return Profile{
		DomainScores:    scores,
		OverallScore:    in.Overall,
		RiskLevel:       level,
		Strengths:       Strengths(in),
		Concerns:        Concerns(in),
		Recommendations: Recommendations(in, level),
	}
}
