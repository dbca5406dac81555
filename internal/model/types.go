package model

// -----------------------------------------------------------------------------
// Market Data Types
// -----------------------------------------------------------------------------

// Quote represents a live price quote for a single symbol.
type Quote struct {
	Symbol        string  // Ticker symbol (e.g., "AAPL")
	Current       float64 // Current price
	Change        float64 // Absolute change since previous close
	PercentChange float64 // Percent change since previous close
	High          float64 // Day high
	Low           float64 // Day low
	Open          float64 // Day open
	PrevClose     float64 // Previous close
	FetchedAt     int64   // Fetch time (µs since epoch)
}

// SymbolInfo describes one entry in an exchange's symbol directory.
type SymbolInfo struct {
	Symbol      string // Ticker symbol
	Description string // Company or instrument name
	Type        string // Instrument type (e.g., "Common Stock")
	Currency    string // Trading currency
}

// CompanyLogo holds the logo location for a symbol.
type CompanyLogo struct {
	Symbol string // Ticker symbol
	URL    string // Vendor-hosted logo URL
}

// -----------------------------------------------------------------------------
// Event Types
// -----------------------------------------------------------------------------

// MacroEvent represents a macro-calendar or filing event.
//
// Identity fields (Source, Title, Date, SpanEnd) determine which logical
// event a record refers to; content fields additionally carry what is shown
// to users. LastCheckedAt is bookkeeping only and never participates in
// identity or content hashing.
type MacroEvent struct {
	Source        string // Originating feed (e.g., "fed", "bls", "insider:AAPL")
	Title         string // Display title
	Category      string // Category (e.g., "rates", "employment", "filing")
	Date          string // Event date, normalized YYYY-MM-DD
	Time          string // Local time of day, "" if all-day
	Timezone      string // IANA timezone, "" if unknown
	SpanEnd       string // End date for multi-day events, "" for single-day
	LastCheckedAt int64  // Last re-ingest check (µs since epoch)
}

// -----------------------------------------------------------------------------
// Insider Flow Types
// -----------------------------------------------------------------------------

// Insider transaction codes, as reported on Form 4 filings.
const (
	CodePurchase    = "P" // Open-market purchase
	CodeAward       = "A" // Grant or award
	CodeExercise    = "M" // Option exercise
	CodeSale        = "S" // Open-market sale
	CodeDisposition = "D" // Disposition to issuer
	CodeGift        = "G" // Gift
)

// InsiderTransaction is a single reported insider trade.
type InsiderTransaction struct {
	Symbol string  // Ticker symbol
	Name   string  // Insider's reported name
	Change int64   // Share delta (positive = acquired, negative = disposed)
	Code   string  // Transaction code (see Code* constants)
	Date   string  // Transaction date, normalized YYYY-MM-DD
	Price  float64 // Transaction price per share
}

// InsiderSummaryRow aggregates all transactions for one insider.
type InsiderSummaryRow struct {
	Name           string  // Insider's name (one row per unique name)
	NetShares      int64   // Net share change across all transactions
	TotalBuys      int64   // Shares acquired via unambiguous buys
	TotalSells     int64   // Shares disposed via unambiguous sells
	LastTradeDate  string  // Date of the most recent transaction
	LastTradeCode  string  // Code of the most recent transaction
	LastTradePrice float64 // Price of the most recent transaction
}
