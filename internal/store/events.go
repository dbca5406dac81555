package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/djcade32/stock-pulse/internal/dedup"
	"github.com/djcade32/stock-pulse/internal/model"
)

// Store wraps a Postgres pool with the persistence operations the freshness
// engine needs.
type Store struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Store.
func New(db *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// UpsertOutcome reports what UpsertEvent did.
type UpsertOutcome struct {
	EventID string // Stable event identifier
	Deduped bool   // True if the event content was unchanged
}

// UpsertEvent writes ev, deduplicating on its identity key.
//
// Three outcomes: unknown identity → insert with a fresh event ID; known
// identity with a changed content hash → update in place, same event ID;
// known identity with the same hash → touch last_checked_at only and report
// Deduped.
func (s *Store) UpsertEvent(ctx context.Context, ev model.MacroEvent) (UpsertOutcome, error) {
	identityKey := dedup.IdentityKey(ev)
	contentHash := dedup.ContentHash(ev)
	now := time.Now().UnixMicro()

	var (
		eventID    string
		storedHash string
	)
	err := s.db.QueryRow(ctx, `
		SELECT event_id, content_hash
		FROM macro_events
		WHERE identity_key = $1
	`, identityKey).Scan(&eventID, &storedHash)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		eventID = uuid.NewString()
		_, err = s.db.Exec(ctx, `
			INSERT INTO macro_events (
				identity_key, event_id, source, title, category,
				event_date, event_time, timezone, span_end,
				content_hash, last_checked_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, identityKey, eventID, ev.Source, ev.Title, ev.Category,
			ev.Date, ev.Time, ev.Timezone, ev.SpanEnd, contentHash, now)
		if err != nil {
			return UpsertOutcome{}, fmt.Errorf("insert event: %w", err)
		}
		return UpsertOutcome{EventID: eventID}, nil

	case err != nil:
		return UpsertOutcome{}, fmt.Errorf("lookup event: %w", err)

	case storedHash == contentHash:
		_, err = s.db.Exec(ctx, `
			UPDATE macro_events SET last_checked_at = $2
			WHERE identity_key = $1
		`, identityKey, now)
		if err != nil {
			return UpsertOutcome{}, fmt.Errorf("touch event: %w", err)
		}
		return UpsertOutcome{EventID: eventID, Deduped: true}, nil

	default:
		_, err = s.db.Exec(ctx, `
			UPDATE macro_events SET
				category = $2, event_time = $3, timezone = $4,
				content_hash = $5, last_checked_at = $6
			WHERE identity_key = $1
		`, identityKey, ev.Category, ev.Time, ev.Timezone, contentHash, now)
		if err != nil {
			return UpsertOutcome{}, fmt.Errorf("update event: %w", err)
		}
		return UpsertOutcome{EventID: eventID}, nil
	}
}

// ReplaceInsiderSummary replaces the persisted summary rows for a symbol
// with the freshly aggregated set, in one transaction.
func (s *Store) ReplaceInsiderSummary(ctx context.Context, symbol string, rows []model.InsiderSummaryRow) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM insider_summary WHERE symbol = $1`, symbol); err != nil {
		return fmt.Errorf("clear summary: %w", err)
	}

	batch := &pgx.Batch{}
	for rank, row := range rows {
		batch.Queue(`
			INSERT INTO insider_summary (
				symbol, rank, name, net_shares, total_buys, total_sells,
				last_trade_date, last_trade_code, last_trade_price
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, symbol, rank, row.Name, row.NetShares, row.TotalBuys, row.TotalSells,
			row.LastTradeDate, row.LastTradeCode, row.LastTradePrice)
	}

	results := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("insert summary row: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}
