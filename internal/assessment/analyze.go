package assessment

import (
	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/games"
	"github.com/abhisek/cogscreen/internal/profile"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/abhisek/cogscreen/internal/risk"
)

// Input is everything a report is computed from.
type Input struct {
	Personal PersonalInfo
	Answers  *questionnaire.AnswerMap

	// Items is the active question sequence the answers refer to.
	Items   []questionnaire.Item
	Results []games.Result

	// Previous holds domain values from an earlier profile.
	Previous map[domain.Domain]float64
}

// CategoryBreakdown is one category's sub-score in a report.
type CategoryBreakdown struct {
	Category questionnaire.Category `json:"category"`
	Sum      int                    `json:"sum"`
	Max      int                    `json:"max"`
	Answered int                    `json:"answered"`
	Percent  float64                `json:"percent"`
}

// Report is the full outcome of an analysis.
type Report struct {
	Profile              risk.Profile                     `json:"profile"`
	SymptomTotal         int                              `json:"symptomTotal"`
	QuestionnairePercent float64                          `json:"questionnairePercent"`
	GameAverage          float64                          `json:"gameAverage"`
	GamesCompleted       int                              `json:"gamesCompleted"`
	BaseScore            int                              `json:"baseScore"`
	AgeBonus             int                              `json:"ageBonus"`
	Categories           []CategoryBreakdown              `json:"categories"`
	Sources              map[domain.Domain]profile.Source `json:"sources"`
	Results              []games.Result                   `json:"results"`
}

// Analyze computes the report. It reads nothing but its arguments, so the
// same input always produces the same report.
func Analyze(in Input, p Policy) Report {
	symptoms := questionnaire.TotalScore(in.Items, in.Answers)
	qPercent := questionnaire.SeverityPercent(in.Items, in.Answers)
	cats := questionnaire.CategoryScores(in.Items, in.Answers)

	comp := profile.Aggregate(profile.Input{
		Results:              in.Results,
		Categories:           cats,
		QuestionnairePercent: qPercent,
		Age:                  in.Personal.Age,
		Previous:             in.Previous,
	}, p.Profile)

	prof := risk.Evaluate(risk.Input{
		DomainScores:     comp.DomainScores,
		Overall:          comp.Overall,
		SymptomTotal:     symptoms,
		Age:              in.Personal.Age,
		HigherEducation:  in.Personal.Education.Higher(),
		HealthConditions: in.Personal.HealthConditions,
	}, p.Risk)

	var breakdown []CategoryBreakdown
	for _, c := range questionnaire.AllCategories() {
		cs, ok := cats[c]
		if !ok {
			continue
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category: c,
			Sum:      cs.Sum,
			Max:      cs.Max,
			Answered: cs.Answered,
			Percent:  cs.Percent(),
		})
	}

	results := make([]games.Result, len(in.Results))
	copy(results, in.Results)

	return Report{
		Profile:              prof,
		SymptomTotal:         symptoms,
		QuestionnairePercent: comp.QuestionnairePercent,
		GameAverage:          comp.GameAverage,
		GamesCompleted:       comp.GamesCompleted,
		BaseScore:            comp.BaseScore,
		AgeBonus:             comp.AgeBonus,
		Categories:           breakdown,
		Sources:              comp.Sources,
		Results:              results,
	}
}
