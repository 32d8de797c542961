package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo on SQLite.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	detail := data.Detail
	if detail == nil {
		detail = map[string]any{}
	}
	b, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal event detail: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events (sequence, session_id, user_id, action, phase, detail, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.UserID, data.Action, data.Phase, string(b), toUnix(r.clock()),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionEvents(ctx context.Context, sessionID string, opts QueryOpts) ([]SessionEvent, error) {
	where := []string{"session_id = ?"}
	args := []any{sessionID}
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, toUnix(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, toUnix(opts.To))
	}

	q := `SELECT sequence, session_id, user_id, action, phase, detail, timestamp
		FROM session_events WHERE ` + strings.Join(where, " AND ") + ` ORDER BY sequence ASC`
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var (
			e      SessionEvent
			detail string
			ts     int64
		)
		if err := rows.Scan(&e.Sequence, &e.SessionID, &e.UserID, &e.Action, &e.Phase, &detail, &ts); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		if err := json.Unmarshal([]byte(detail), &e.Detail); err != nil {
			return nil, fmt.Errorf("unmarshal event detail: %w", err)
		}
		e.Timestamp = fromUnix(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}
