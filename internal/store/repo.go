package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/cogscreen/internal/risk"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Profile is a stored cognitive profile with the session that produced it.
type Profile struct {
	risk.Profile
	SessionID string    `json:"sessionId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileRepo stores the latest profile per user and keeps a history of
// earlier ones.
type ProfileRepo interface {
	// Get returns the latest profile, or ErrNotFound.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Set replaces the latest profile and appends it to the history.
	Set(ctx context.Context, userID string, p *Profile) error

	// History returns up to limit profiles, newest first (0 = all).
	History(ctx context.Context, userID string, limit int) ([]Profile, error)

	// Prune deletes all but the keep most recent history entries.
	Prune(ctx context.Context, userID string, keep int) error
}

// SessionEventData captures one step of an assessment session.
type SessionEventData struct {
	SessionID string
	UserID    string
	Action    string // "start", "phase", "complete"
	Phase     string
	Detail    map[string]any
}

// SessionEvent is a recorded SessionEventData.
type SessionEvent struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendSessionEvent records a session event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// SessionEvents returns events of one session in sequence order.
	SessionEvents(ctx context.Context, sessionID string, opts QueryOpts) ([]SessionEvent, error)
}
