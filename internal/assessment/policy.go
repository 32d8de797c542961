package assessment

import (
	"github.com/abhisek/cogscreen/internal/games"
	"github.com/abhisek/cogscreen/internal/profile"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/abhisek/cogscreen/internal/risk"
)

// Policy gathers the scoring constants. They have no documented clinical
// basis and are kept configurable.
type Policy struct {
	AdaptiveThreshold int             `mapstructure:"adaptive_threshold"`
	TargetTrials      int             `mapstructure:"target_trials"`
	Profile           profile.Policy  `mapstructure:"profile"`
	Risk              risk.Thresholds `mapstructure:"risk"`
}

// DefaultPolicy returns the standard constants.
func DefaultPolicy() Policy {
	return Policy{
		AdaptiveThreshold: questionnaire.DefaultAdaptiveThreshold,
		TargetTrials:      games.DefaultTargetTrials,
		Profile:           profile.DefaultPolicy(),
		Risk:              risk.DefaultThresholds(),
	}
}
