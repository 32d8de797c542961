package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/abhisek/cogscreen/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultHistoryKeep is how many past profiles are kept per user.
const DefaultHistoryKeep = 20

// Service analyzes finished assessments and persists the resulting
// profiles.
type Service struct {
	profiles    store.ProfileRepo
	events      store.EventRepo
	policy      Policy
	log         *zap.Logger
	historyKeep int
	now         func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithEvents records session events through repo.
func WithEvents(repo store.EventRepo) ServiceOption {
	return func(s *Service) { s.events = repo }
}

// WithHistoryKeep sets how many past profiles are kept per user. Zero or
// less keeps everything.
func WithHistoryKeep(n int) ServiceOption {
	return func(s *Service) { s.historyKeep = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. A nil logger discards logs.
func NewService(profiles store.ProfileRepo, p Policy, log *zap.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		profiles:    profiles,
		policy:      p,
		log:         log,
		historyKeep: DefaultHistoryKeep,
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Previous returns the domain scores of the user's latest profile, or nil
// when the user has none.
func (s *Service) Previous(ctx context.Context, userID string) (map[domain.Domain]float64, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load previous profile: %w", err)
	}
	return p.DomainScores, nil
}

// Complete analyzes a session in the analysis phase, stores the profile
// under userID and returns the report.
func (s *Service) Complete(ctx context.Context, userID string, sess *Session) (Report, error) {
	if err := sess.require(PhaseAnalysis); err != nil {
		return Report{}, err
	}
	prev, err := s.Previous(ctx, userID)
	if err != nil {
		return Report{}, err
	}
	report, err := sess.Analyze(prev)
	if err != nil {
		return Report{}, err
	}
	if err := s.persist(ctx, userID, sess.ID, report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// Score analyzes a batch document and stores the profile under userID.
// Domain values missing from the document fall back to the stored profile.
func (s *Service) Score(ctx context.Context, userID string, doc *Document, bank *questionnaire.Bank) (Report, error) {
	sessionID := uuid.NewString()
	s.RecordEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		UserID:    userID,
		Action:    "start",
		Phase:     PhaseDemographics.String(),
		Detail:    map[string]any{"source": "document"},
	})

	in := doc.Input(bank, s.policy)
	if len(in.Previous) == 0 {
		prev, err := s.Previous(ctx, userID)
		if err != nil {
			return Report{}, err
		}
		in.Previous = prev
	}

	report := Analyze(in, s.policy)
	if err := s.persist(ctx, userID, sessionID, report); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (s *Service) persist(ctx context.Context, userID, sessionID string, report Report) error {
	p := &store.Profile{
		Profile:   report.Profile,
		SessionID: sessionID,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.profiles.Set(ctx, userID, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if s.historyKeep > 0 {
		if err := s.profiles.Prune(ctx, userID, s.historyKeep); err != nil {
			s.log.Warn("prune profile history failed", zap.String("user", userID), zap.Error(err))
		}
	}

	s.RecordEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		UserID:    userID,
		Action:    "complete",
		Phase:     PhaseAnalysis.String(),
		Detail: map[string]any{
			"overall":  report.Profile.OverallScore,
			"risk":     string(report.Profile.RiskLevel),
			"games":    report.GamesCompleted,
			"symptoms": report.SymptomTotal,
		},
	})

	s.log.Info("assessment completed",
		zap.String("user", userID),
		zap.String("session", sessionID),
		zap.Int("overall", report.Profile.OverallScore),
		zap.String("risk", string(report.Profile.RiskLevel)),
		zap.Int("games", report.GamesCompleted),
	)
	return nil
}

// RecordEvent appends a session event. Failures are logged, not returned.
func (s *Service) RecordEvent(ctx context.Context, data store.SessionEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		s.log.Warn("record session event failed",
			zap.String("session", data.SessionID),
			zap.String("action", data.Action),
			zap.Error(err),
		)
	}
}
