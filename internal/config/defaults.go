package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL           = "https://finnhub.io/api/v1"
	DefaultVendorTimeout     = 30 * time.Second
	DefaultMaxRetries        = 3
	DefaultDBPort            = 5432
	DefaultDBSSLMode         = "prefer"
	DefaultMaxConns          = 10
	DefaultMinConns          = 2
	DefaultQuoteTTL          = 10 * time.Second
	DefaultLogoTTL           = 24 * time.Hour
	DefaultSymbolsTTL        = 60 * time.Second
	DefaultSweepInterval     = 5 * time.Minute
	DefaultEnsureConcurrency = 2
	DefaultEnsureSoftTimeout = 50 * time.Second
	DefaultEnsureLookback    = 90 * 24 * time.Hour
	DefaultServerPort        = 8080
)

func (c *PulseConfig) applyDefaults() {
	// Vendor defaults
	if c.Vendor.RestURL == "" {
		c.Vendor.RestURL = DefaultRestURL
	}
	if c.Vendor.Timeout == 0 {
		c.Vendor.Timeout = DefaultVendorTimeout
	}
	if c.Vendor.MaxRetries == 0 {
		c.Vendor.MaxRetries = DefaultMaxRetries
	}

	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// Cache defaults
	if c.Cache.QuoteTTL == 0 {
		c.Cache.QuoteTTL = DefaultQuoteTTL
	}
	if c.Cache.LogoTTL == 0 {
		c.Cache.LogoTTL = DefaultLogoTTL
	}
	if c.Cache.SymbolsTTL == 0 {
		c.Cache.SymbolsTTL = DefaultSymbolsTTL
	}
	if c.Cache.SweepInterval == 0 {
		c.Cache.SweepInterval = DefaultSweepInterval
	}

	// Ensure defaults
	if c.Ensure.Concurrency == 0 {
		c.Ensure.Concurrency = DefaultEnsureConcurrency
	}
	if c.Ensure.SoftTimeout == 0 {
		c.Ensure.SoftTimeout = DefaultEnsureSoftTimeout
	}
	if c.Ensure.Lookback == 0 {
		c.Ensure.Lookback = DefaultEnsureLookback
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
