package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// sqliteProfileRepo implements ProfileRepo on SQLite.
type sqliteProfileRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *sqliteProfileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	var (
		data    string
		updated int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT data, updated_at FROM profiles WHERE user_id = ?`, userID,
	).Scan(&data, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	p.UpdatedAt = fromUnix(updated)
	return &p, nil
}

func (r *sqliteProfileRepo) Set(ctx context.Context, userID string, p *Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	ts := toUnix(p.UpdatedAt)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, session_id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   session_id = excluded.session_id,
		   data = excluded.data,
		   updated_at = excluded.updated_at`,
		userID, p.SessionID, string(b), ts,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profile_history (sequence, user_id, session_id, data, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		seqNum, userID, p.SessionID, string(b), ts,
	)
	if err != nil {
		return fmt.Errorf("save profile history: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteProfileRepo) History(ctx context.Context, userID string, limit int) ([]Profile, error) {
	q := `SELECT data, recorded_at FROM profile_history WHERE user_id = ? ORDER BY sequence DESC`
	args := []any{userID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query profile history: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var (
			data     string
			recorded int64
		)
		if err := rows.Scan(&data, &recorded); err != nil {
			return nil, fmt.Errorf("scan profile history: %w", err)
		}
		var p Profile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		p.UpdatedAt = fromUnix(recorded)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *sqliteProfileRepo) Prune(ctx context.Context, userID string, keep int) error {
	// Find the sequence threshold: the keep-th most recent entry.
	var threshold int64
	err := r.db.QueryRowContext(ctx,
		`SELECT sequence FROM profile_history WHERE user_id = ?
		 ORDER BY sequence DESC LIMIT 1 OFFSET ?`,
		userID, max(keep, 0),
	).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep entries exist
	}
	if err != nil {
		return fmt.Errorf("query history for prune: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`DELETE FROM profile_history WHERE user_id = ? AND sequence <= ?`, userID, threshold,
	)
	if err != nil {
		return fmt.Errorf("prune profile history: %w", err)
	}
	return nil
}
