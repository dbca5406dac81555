package marketdata

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/djcade32/stock-pulse/internal/api"
	"github.com/djcade32/stock-pulse/internal/cache"
	"github.com/djcade32/stock-pulse/internal/model"
)

// Config holds cached-accessor settings.
type Config struct {
	QuoteTTL        time.Duration // Freshness window for live quotes (default: 10s)
	LogoTTL         time.Duration // Freshness window for logos (default: 24h)
	SymbolsTTL      time.Duration // Freshness window for symbol lists (default: 60s)
	WarmConcurrency int           // Max concurrent vendor calls in WarmQuotes (default: 4)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		QuoteTTL:        cache.TTLQuote,
		LogoTTL:         cache.TTLLogo,
		SymbolsTTL:      cache.TTLSymbols,
		WarmConcurrency: 4,
	}
}

// Service answers market-data reads from the cache, falling through to the
// vendor client on miss. All methods are safe for concurrent use; the caches
// are shared by arbitrarily many callers.
type Service struct {
	cfg    Config
	client *api.Client
	logger *slog.Logger

	quotes  *cache.Cache[model.Quote]
	logos   *cache.Cache[model.CompanyLogo]
	symbols *cache.Cache[[]model.SymbolInfo]
}

// New creates a Service. Zero config fields fall back to defaults.
func New(cfg Config, client *api.Client, logger *slog.Logger) *Service {
	def := DefaultConfig()
	if cfg.QuoteTTL <= 0 {
		cfg.QuoteTTL = def.QuoteTTL
	}
	if cfg.LogoTTL <= 0 {
		cfg.LogoTTL = def.LogoTTL
	}
	if cfg.SymbolsTTL <= 0 {
		cfg.SymbolsTTL = def.SymbolsTTL
	}
	if cfg.WarmConcurrency < 1 {
		cfg.WarmConcurrency = def.WarmConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:     cfg,
		client:  client,
		logger:  logger,
		quotes:  cache.New[model.Quote](),
		logos:   cache.New[model.CompanyLogo](),
		symbols: cache.New[[]model.SymbolInfo](),
	}
}

// GetQuote returns the live quote for symbol, fresh within QuoteTTL.
func (s *Service) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	key := cache.QuoteKey(symbol)
	if quote, ok := s.quotes.Get(key); ok {
		return quote, nil
	}

	apiQuote, err := s.client.GetQuote(ctx, symbol)
	if err != nil {
		return model.Quote{}, err
	}

	quote := apiQuote.ToModel(symbol, time.Now().UnixMicro())
	s.quotes.Set(key, quote, s.cfg.QuoteTTL)
	return quote, nil
}

// GetLogo returns the logo for symbol, fresh within LogoTTL.
func (s *Service) GetLogo(ctx context.Context, symbol string) (model.CompanyLogo, error) {
	key := cache.LogoKey(symbol)
	if logo, ok := s.logos.Get(key); ok {
		return logo, nil
	}

	profile, err := s.client.GetProfile(ctx, symbol)
	if err != nil {
		return model.CompanyLogo{}, err
	}

	logo := model.CompanyLogo{Symbol: symbol, URL: profile.Logo}
	s.logos.Set(key, logo, s.cfg.LogoTTL)
	return logo, nil
}

// GetSymbols returns the symbol directory for exchange, fresh within
// SymbolsTTL.
func (s *Service) GetSymbols(ctx context.Context, exchange string) ([]model.SymbolInfo, error) {
	key := cache.SymbolsKey(exchange)
	if list, ok := s.symbols.Get(key); ok {
		return list, nil
	}

	apiSymbols, err := s.client.GetSymbols(ctx, exchange)
	if err != nil {
		return nil, err
	}

	list := make([]model.SymbolInfo, 0, len(apiSymbols))
	for _, sym := range apiSymbols {
		list = append(list, sym.ToModel())
	}
	s.symbols.Set(key, list, s.cfg.SymbolsTTL)
	return list, nil
}

// WarmQuotes prefetches quotes for the given symbols with bounded fan-out.
// Individual fetch failures are logged and skipped; the cache simply stays
// cold for those symbols.
func (s *Service) WarmQuotes(ctx context.Context, symbols []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.WarmConcurrency)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			if _, err := s.GetQuote(ctx, symbol); err != nil {
				s.logger.Warn("quote warm-up failed",
					"symbol", symbol,
					"err", err,
				)
			}
			return nil
		})
	}

	return g.Wait()
}

// StartSweepers launches background sweeps of all three caches so expired
// entries do not pile up between reads.
func (s *Service) StartSweepers(ctx context.Context, interval time.Duration) {
	s.quotes.StartSweeper(ctx, interval)
	s.logos.StartSweeper(ctx, interval)
	s.symbols.StartSweeper(ctx, interval)
}
