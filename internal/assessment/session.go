package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/games"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/google/uuid"
)

var (
	// ErrUnknownItem is returned for an answer to an item that is not in
	// the active sequence.
	ErrUnknownItem = errors.New("item not in active sequence")

	// ErrInvalidOption is returned for a value that is not one of the
	// item's options.
	ErrInvalidOption = errors.New("value is not an option of the item")
)

// Session is one user's pass through the assessment. It is not safe for
// concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time

	policy   Policy
	phase    Phase
	personal *PersonalInfo
	engine   *questionnaire.Engine
	answers  *questionnaire.AnswerMap
	results  []games.Result
}

// NewSession starts a session in the demographics phase. A nil bank
// selects the default question bank.
func NewSession(bank *questionnaire.Bank, p Policy, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		policy:    p,
		phase:     PhaseDemographics,
		engine:    questionnaire.NewEngine(bank, p.AdaptiveThreshold),
		answers:   questionnaire.NewAnswerMap(),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Policy returns the scoring constants of the session.
func (s *Session) Policy() Policy { return s.policy }

func (s *Session) require(p Phase) error {
	if s.phase != p {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongPhase, s.phase, p)
	}
	return nil
}

func (s *Session) advance() { s.phase = Next(s.phase) }

// SubmitDemographics validates and records personal information. It may be
// called again to correct the information before the phase completes.
func (s *Session) SubmitDemographics(info PersonalInfo) error {
	if err := s.require(PhaseDemographics); err != nil {
		return err
	}
	if err := info.Validate(); err != nil {
		return err
	}
	s.personal = &info
	return nil
}

// CompleteDemographics moves on to the questionnaire.
func (s *Session) CompleteDemographics() error {
	if err := s.require(PhaseDemographics); err != nil {
		return err
	}
	if s.personal == nil {
		return fmt.Errorf("%w: no personal info submitted", ErrIncomplete)
	}
	s.advance()
	return nil
}

// Questions returns the active question sequence.
func (s *Session) Questions() []questionnaire.Item { return s.engine.Sequence() }

// Answers returns a copy of the answers given so far.
func (s *Session) Answers() *questionnaire.AnswerMap { return s.answers.Clone() }

// Answer records value for item id. When the answer completes the base
// set, the adaptive decision is made and any follow-up items are returned.
func (s *Session) Answer(id int, value string) ([]questionnaire.Item, error) {
	if err := s.require(PhaseQuestionnaire); err != nil {
		return nil, err
	}
	it, ok := s.engine.Item(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	if _, ok := it.Option(value); !ok {
		return nil, fmt.Errorf("%w: item %d, value %q", ErrInvalidOption, id, value)
	}
	s.answers.Set(id, value)
	return s.engine.NextItems(s.answers), nil
}

// CompleteQuestionnaire moves on to the games once every active item,
// follow-ups included, is answered.
func (s *Session) CompleteQuestionnaire() error {
	if err := s.require(PhaseQuestionnaire); err != nil {
		return err
	}
	if !s.engine.Complete(s.answers) {
		return fmt.Errorf("%w: %d of %d items answered", ErrIncomplete, s.answers.Len(), len(s.engine.Sequence()))
	}
	s.advance()
	return nil
}

// RecordGame stores a scored game result.
func (s *Session) RecordGame(r games.Result) error {
	if err := s.require(PhaseCognitiveTests); err != nil {
		return err
	}
	s.results = append(s.results, r)
	return nil
}

// Results returns the recorded game results.
func (s *Session) Results() []games.Result {
	out := make([]games.Result, len(s.results))
	copy(out, s.results)
	return out
}

// CompleteGames moves on to analysis. Skipping every game is allowed; the
// composite then rests on the questionnaire alone.
func (s *Session) CompleteGames() error {
	if err := s.require(PhaseCognitiveTests); err != nil {
		return err
	}
	s.advance()
	return nil
}

// Input assembles the analysis input from the session.
func (s *Session) Input(previous map[domain.Domain]float64) (Input, error) {
	if err := s.require(PhaseAnalysis); err != nil {
		return Input{}, err
	}
	return Input{
		Personal: *s.personal,
		Answers:  s.answers.Clone(),
		Items:    s.engine.Sequence(),
		Results:  s.Results(),
		Previous: previous,
	}, nil
}

// Analyze computes the report for a session in the analysis phase.
func (s *Session) Analyze(previous map[domain.Domain]float64) (Report, error) {
	in, err := s.Input(previous)
	if err != nil {
		return Report{}, err
	}
	return Analyze(in, s.policy), nil
}
