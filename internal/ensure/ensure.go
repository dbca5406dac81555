package ensure

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Outcome is what the analyzer reports for one successfully analyzed ticker.
type Outcome struct {
	EventID string // Identifier of the analyzed report event
	Deduped bool   // True if the report was unchanged since the last run
}

// Analyzer produces an up-to-date analyzed report for a single ticker.
// Implementations must be safe for concurrent calls on distinct tickers.
type Analyzer interface {
	AnalyzeTicker(ctx context.Context, ticker string) (Outcome, error)
}

// AnalyzerFunc is a function adapter for Analyzer.
type AnalyzerFunc func(ctx context.Context, ticker string) (Outcome, error)

func (f AnalyzerFunc) AnalyzeTicker(ctx context.Context, ticker string) (Outcome, error) {
	return f(ctx, ticker)
}

// Result records the outcome of one attempted ticker. Exactly one of
// EventID/Deduped or Err is populated.
type Result struct {
	Ticker  string `json:"ticker"`
	EventID string `json:"eventId,omitempty"`
	Deduped bool   `json:"deduped,omitempty"`
	Err     string `json:"error,omitempty"`
}

// Report is the outcome of one orchestration run. Result order is
// unspecified — workers race for queue items. Tickers never dequeued before
// the deadline produce no Result, so len(Results) can be less than the input
// size; Partial is true exactly when that happened.
type Report struct {
	Results []Result `json:"results"`
	Partial bool     `json:"partial"`
}

// Config holds orchestrator settings.
type Config struct {
	Concurrency int           // Worker count (default: 2)
	SoftTimeout time.Duration // Wall-clock budget per run (default: 50s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 2,
		SoftTimeout: 50 * time.Second,
	}
}

// Orchestrator runs ensure-latest batches. The worker pool's lifetime equals
// the Run call's lifetime; no state is carried across runs.
type Orchestrator struct {
	cfg      Config
	analyzer Analyzer
	logger   *slog.Logger
}

// New creates an Orchestrator. Zero config fields fall back to defaults.
func New(cfg Config, analyzer Analyzer, logger *slog.Logger) *Orchestrator {
	def := DefaultConfig()
	if cfg.Concurrency < 1 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.SoftTimeout <= 0 {
		cfg.SoftTimeout = def.SoftTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:      cfg,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Run ensures every ticker has an up-to-date analyzed report, stopping early
// once the soft deadline elapses. Per-ticker failures are returned as data;
// Run itself never fails.
func (o *Orchestrator) Run(ctx context.Context, tickers []string) Report {
	start := time.Now()
	deadline := start.Add(o.cfg.SoftTimeout)
	queue := newWorkQueue(tickers)

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(tickers))
	)

	var wg sync.WaitGroup
	for i := 0; i < o.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				// Deadline and cancellation are checked between tickers
				// only; in-flight analyzer calls are never preempted.
				if !time.Now().Before(deadline) || ctx.Err() != nil {
					return
				}

				ticker, ok := queue.pop()
				if !ok {
					return
				}

				res := o.analyzeOne(ctx, ticker)

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Workers exit either on an empty queue or on the deadline, so a
	// non-empty queue here means the deadline cut the run short.
	skipped := queue.remaining()
	partial := skipped > 0

	o.logger.Info("ensure run complete",
		"tickers", len(tickers),
		"attempted", len(results),
		"skipped", skipped,
		"partial", partial,
		"duration", time.Since(start),
	)

	return Report{Results: results, Partial: partial}
}

// analyzeOne invokes the analyzer for one ticker and maps the outcome to a
// Result. Errors become in-band data, never a failed run.
func (o *Orchestrator) analyzeOne(ctx context.Context, ticker string) Result {
	out, err := o.analyzer.AnalyzeTicker(ctx, ticker)
	if err != nil {
		o.logger.Warn("ticker analysis failed",
			"ticker", ticker,
			"err", err,
		)
		return Result{Ticker: ticker, Err: err.Error()}
	}
	return Result{
		Ticker:  ticker,
		EventID: out.EventID,
		Deduped: out.Deduped,
	}
}
