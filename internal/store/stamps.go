package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// LastEnsuredAt returns when the account's tracked tickers were last ensured,
// or ok=false if the account has never run an ensure.
func (s *Store) LastEnsuredAt(ctx context.Context, accountID string) (time.Time, bool, error) {
	var ensuredAt time.Time
	err := s.db.QueryRow(ctx, `
		SELECT ensured_at FROM ensure_stamps WHERE account_id = $1
	`, accountID).Scan(&ensuredAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("lookup ensure stamp: %w", err)
	}
	return ensuredAt, true, nil
}

// TouchEnsured records that the account's tracked tickers were just ensured.
// Callers stamp only after a run, so a crash mid-run leaves the old stamp
// and the next request retries the whole batch.
func (s *Store) TouchEnsured(ctx context.Context, accountID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ensure_stamps (account_id, ensured_at)
		VALUES ($1, now())
		ON CONFLICT (account_id) DO UPDATE SET ensured_at = now()
	`, accountID)
	if err != nil {
		return fmt.Errorf("touch ensure stamp: %w", err)
	}
	return nil
}
