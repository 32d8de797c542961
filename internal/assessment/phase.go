// Package assessment drives one screening from demographics to analysis and
// turns the collected answers and game results into a report.
package assessment

import "errors"

// Phase is the stage of an assessment.
type Phase int

const (
	PhaseDemographics   Phase = iota // Collecting personal information
	PhaseQuestionnaire               // Answering symptom items
	PhaseCognitiveTests              // Playing mini-games
	PhaseAnalysis                    // Results available
)

var (
	// ErrWrongPhase is returned when an operation is not allowed in the
	// session's current phase.
	ErrWrongPhase = errors.New("operation not allowed in current phase")

	// ErrIncomplete is returned when a phase is completed before its
	// required input was given.
	ErrIncomplete = errors.New("phase input incomplete")
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDemographics:
		return "demographics"
	case PhaseQuestionnaire:
		return "questionnaire"
	case PhaseCognitiveTests:
		return "cognitive_tests"
	case PhaseAnalysis:
		return "analysis"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows p. Analysis is terminal.
func Next(p Phase) Phase {
	switch p {
	case PhaseDemographics:
		return PhaseQuestionnaire
	case PhaseQuestionnaire:
		return PhaseCognitiveTests
	default:
		return PhaseAnalysis
	}
}
