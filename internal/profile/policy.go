// Package profile merges questionnaire sub-scores and game scores into the
// six cognitive domains and a single age-adjusted composite score.
package profile

const (
	// DefaultGameWeight is the share of the composite taken by games.
	DefaultGameWeight = 0.7

	// DefaultQuestionnaireWeight is the share taken by the questionnaire.
	DefaultQuestionnaireWeight = 0.3

	// DefaultNeutralScore fills a domain that was never measured.
	DefaultNeutralScore = 70.0
)

// Policy holds the tunable constants of the aggregation.
type Policy struct {
	GameWeight          float64 `mapstructure:"game_weight"`
	QuestionnaireWeight float64 `mapstructure:"questionnaire_weight"`
	NeutralScore        float64 `mapstructure:"neutral_score"`
}

// DefaultPolicy returns the standard 70/30 blend with a neutral domain
// score of 70.
func DefaultPolicy() Policy {
	return Policy{
		GameWeight:          DefaultGameWeight,
		QuestionnaireWeight: DefaultQuestionnaireWeight,
		NeutralScore:        DefaultNeutralScore,
	}
}

// AgeBonus returns the flat points added to the composite for age.
func AgeBonus(age int) int {
	switch {
	case age >= 75:
		return 15
	case age >= 65:
		return 10
	case age >= 50:
		return 5
	default:
		return 0
	}
}
