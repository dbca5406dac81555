package config

import "time"

// PulseConfig is the root configuration for a pulse service instance.
type PulseConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	Vendor   VendorConfig   `yaml:"vendor"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Ensure   EnsureConfig   `yaml:"ensure"`
	Server   ServerConfig   `yaml:"server"`
}

// InstanceConfig identifies this service instance.
type InstanceConfig struct {
	ID  string `yaml:"id"`
	Env string `yaml:"env"`
}

// VendorConfig holds market-data vendor API settings.
type VendorConfig struct {
	RestURL    string        `yaml:"rest_url"`
	APIToken   string        `yaml:"api_token"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// DatabaseConfig holds the Postgres connection for events and stamps.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// CacheConfig holds freshness windows for the market-data caches.
type CacheConfig struct {
	QuoteTTL      time.Duration `yaml:"quote_ttl"`
	LogoTTL       time.Duration `yaml:"logo_ttl"`
	SymbolsTTL    time.Duration `yaml:"symbols_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// EnsureConfig holds batch orchestrator settings.
type EnsureConfig struct {
	Concurrency int           `yaml:"concurrency"`
	SoftTimeout time.Duration `yaml:"soft_timeout"`
	Lookback    time.Duration `yaml:"lookback"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}
