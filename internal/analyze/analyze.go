package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/djcade32/stock-pulse/internal/api"
	"github.com/djcade32/stock-pulse/internal/ensure"
	"github.com/djcade32/stock-pulse/internal/insider"
	"github.com/djcade32/stock-pulse/internal/model"
	"github.com/djcade32/stock-pulse/internal/store"
)

// EventStore is the persistence surface the analyzer needs.
type EventStore interface {
	UpsertEvent(ctx context.Context, ev model.MacroEvent) (store.UpsertOutcome, error)
	ReplaceInsiderSummary(ctx context.Context, symbol string, rows []model.InsiderSummaryRow) error
}

// Config holds analyzer settings.
type Config struct {
	Lookback time.Duration // Insider-transaction window (default: 90 days)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Lookback: 90 * 24 * time.Hour,
	}
}

// Service implements ensure.Analyzer over the vendor client and the store.
// Safe for concurrent calls on distinct tickers.
type Service struct {
	cfg    Config
	client *api.Client
	store  EventStore
	logger *slog.Logger

	now func() time.Time
}

// New creates a Service. Zero config fields fall back to defaults.
func New(cfg Config, client *api.Client, st EventStore, logger *slog.Logger) *Service {
	if cfg.Lookback <= 0 {
		cfg.Lookback = DefaultConfig().Lookback
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		client: client,
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// AnalyzeTicker refreshes the ticker's insider-flow report and returns the
// resulting event identity plus whether the report was unchanged.
func (s *Service) AnalyzeTicker(ctx context.Context, ticker string) (ensure.Outcome, error) {
	now := s.now()
	to := now.Format(time.DateOnly)
	from := now.Add(-s.cfg.Lookback).Format(time.DateOnly)

	apiTxs, err := s.client.GetInsiderTransactions(ctx, ticker, from, to)
	if err != nil {
		return ensure.Outcome{}, fmt.Errorf("fetch insider transactions for %s: %w", ticker, err)
	}

	txs := make([]model.InsiderTransaction, 0, len(apiTxs))
	for _, tx := range apiTxs {
		txs = append(txs, tx.ToModel(ticker))
	}

	rows := insider.Aggregate(txs)

	if err := s.store.ReplaceInsiderSummary(ctx, ticker, rows); err != nil {
		return ensure.Outcome{}, fmt.Errorf("persist insider summary for %s: %w", ticker, err)
	}

	outcome, err := s.store.UpsertEvent(ctx, s.flowEvent(ticker, rows, now))
	if err != nil {
		return ensure.Outcome{}, fmt.Errorf("upsert flow event for %s: %w", ticker, err)
	}

	s.logger.Debug("ticker analyzed",
		"ticker", ticker,
		"transactions", len(txs),
		"insiders", len(rows),
		"deduped", outcome.Deduped,
	)

	return ensure.Outcome{EventID: outcome.EventID, Deduped: outcome.Deduped}, nil
}

// flowEvent builds the filing event summarizing the ticker's insider flow.
// Its date is the latest trade date seen, so re-analysis with no new filings
// hashes identically and dedups to a no-op.
func (s *Service) flowEvent(ticker string, rows []model.InsiderSummaryRow, now time.Time) model.MacroEvent {
	latest := ""
	for _, row := range rows {
		if row.LastTradeDate > latest {
			latest = row.LastTradeDate
		}
	}
	if latest == "" {
		// No filings in the window: pin to the window end so the quiet
		// state still dedups day over day.
		latest = now.Format(time.DateOnly)
	}

	return model.MacroEvent{
		Source:        "insider:" + ticker,
		Title:         ticker + " insider flow",
		Category:      "filing",
		Date:          latest,
		LastCheckedAt: now.UnixMicro(),
	}
}

// RefreshCalendar re-ingests the vendor's macro calendar between from and to
// (inclusive, YYYY-MM-DD) and upserts each event. Events whose content is
// unchanged since the last ingest dedup to a no-op touch. Returns how many
// events were written versus deduped.
func (s *Service) RefreshCalendar(ctx context.Context, from, to string) (written, deduped int, err error) {
	apiEvents, err := s.client.GetEconomicCalendar(ctx, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch economic calendar: %w", err)
	}

	now := s.now().UnixMicro()
	for _, apiEv := range apiEvents {
		ev := apiEv.ToModel()
		ev.LastCheckedAt = now

		outcome, err := s.store.UpsertEvent(ctx, ev)
		if err != nil {
			return written, deduped, fmt.Errorf("upsert calendar event %q: %w", ev.Title, err)
		}
		if outcome.Deduped {
			deduped++
		} else {
			written++
		}
	}

	s.logger.Info("macro calendar refreshed",
		"events", len(apiEvents),
		"written", written,
		"deduped", deduped,
	)

	return written, deduped, nil
}
