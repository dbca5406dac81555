package cache

import "time"

// TTLs used by the callers in this system.
const (
	// TTLQuote keeps live quotes fresh within 10 seconds.
	TTLQuote = 10 * time.Second

	// TTLLogo holds logos for a day; logos essentially never change.
	// HTTP responses carrying a logo use LogoCacheControlMaxAge instead.
	TTLLogo = 24 * time.Hour

	// TTLSymbols refreshes exchange symbol directories every minute.
	TTLSymbols = 60 * time.Second
)

// LogoCacheControlMaxAge is the max-age advertised to HTTP clients for logo
// responses (seconds). Shorter than the entry TTL so browsers revalidate.
const LogoCacheControlMaxAge = 300

// QuoteKey returns the cache key for a symbol's live quote.
func QuoteKey(symbol string) string { return "q:" + symbol }

// LogoKey returns the cache key for a symbol's logo.
func LogoKey(symbol string) string { return "logo:" + symbol }

// SymbolsKey returns the cache key for an exchange's symbol directory.
func SymbolsKey(exchange string) string { return "symbols:" + exchange }
