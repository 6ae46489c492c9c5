package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed-width so that started_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrInvalidLimit is returned when a listing limit is not positive.
var ErrInvalidLimit = errors.New("limit must be greater than 0")

// RelayCallRepo provides methods for the relay call ledger.
type RelayCallRepo struct {
	db *sql.DB
}

// NewRelayCallRepo creates a new RelayCallRepo.
func NewRelayCallRepo(db *sql.DB) *RelayCallRepo {
	return &RelayCallRepo{db: db}
}

// Insert records a relay call. A missing ID is filled with a new UUID.
func (r *RelayCallRepo) Insert(ctx context.Context, call *RelayCall) error {
	if call.ID == "" {
		call.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO relay_calls (id, started_at, duration_ms, outcome, upstream_status, message_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		call.ID, call.StartedAt.UTC().Format(timeLayout), call.DurationMS,
		call.Outcome, call.UpstreamStatus, call.MessageCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert relay call: %w", err)
	}
	return nil
}

// Recent returns up to limit relay calls, newest first.
func (r *RelayCallRepo) Recent(ctx context.Context, limit int) ([]RelayCall, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, outcome, upstream_status, message_count
		 FROM relay_calls ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query relay calls: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	calls := make([]RelayCall, 0, limit)
	for rows.Next() {
		var call RelayCall
		var startedAt string
		if err := rows.Scan(&call.ID, &startedAt, &call.DurationMS, &call.Outcome, &call.UpstreamStatus, &call.MessageCount); err != nil {
			return nil, fmt.Errorf("failed to scan relay call: %w", err)
		}
		call.StartedAt, err = time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at timestamp: %w", err)
		}
		calls = append(calls, call)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate relay calls: %w", err)
	}

	return calls, nil
}

// CountByOutcome returns the number of recorded calls per outcome.
func (r *RelayCallRepo) CountByOutcome(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT outcome, COUNT(*) FROM relay_calls GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("failed to count relay calls: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("failed to scan relay call count: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
