// Package risk classifies a composite score into a risk tier and derives
// strengths, concerns and recommendations as canonical message keys.
package risk

// Level is a risk tier.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

const (
	// DefaultLowThreshold is the lowest composite classified as low risk.
	DefaultLowThreshold = 75

	// DefaultModerateThreshold is the lowest composite classified as moderate.
	DefaultModerateThreshold = 50
)

// Thresholds are the composite cut-offs between tiers.
type Thresholds struct {
	Low      int `mapstructure:"low"`
	Moderate int `mapstructure:"moderate"`
}

// DefaultThresholds returns the 75 / 50 cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: DefaultLowThreshold, Moderate: DefaultModerateThreshold}
}

// Classify maps a composite score to a tier.
func Classify(overall int, th Thresholds) Level {
	switch {
	case overall >= th.Low:
		return LevelLow
	case overall >= th.Moderate:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// DisplayName returns a human-readable label for the tier.
func (l Level) DisplayName() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelModerate:
		return "Moderate"
	case LevelHigh:
		return "High"
	default:
		return string(l)
	}
}
