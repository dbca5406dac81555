package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pulse.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-pulse
  env: dev
vendor:
  rest_url: https://sandbox.vendor.example/api/v1
  api_token: tok-123
database:
  postgres:
    host: localhost
    port: 5432
    name: pulse_db
    user: pulse
    password: secret
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-pulse" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-pulse")
	}
	if cfg.Vendor.RestURL != "https://sandbox.vendor.example/api/v1" {
		t.Errorf("Vendor.RestURL = %q", cfg.Vendor.RestURL)
	}
	if cfg.Database.Postgres.Host != "localhost" {
		t.Errorf("Database.Postgres.Host = %q, want localhost", cfg.Database.Postgres.Host)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_VENDOR_TOKEN", "secret123")

	yaml := `
instance:
  id: test-pulse
vendor:
  api_token: ${TEST_VENDOR_TOKEN}
database:
  postgres:
    host: localhost
    name: pulse_db
    user: pulse
    password: secret
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Vendor.APIToken != "secret123" {
		t.Errorf("Vendor.APIToken = %q, want %q", cfg.Vendor.APIToken, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-pulse
vendor:
  api_token: tok-123
database:
  postgres:
    host: localhost
    name: pulse_db
    user: pulse
    password: secret
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Vendor.RestURL != DefaultRestURL {
		t.Errorf("Vendor.RestURL = %q, want default %q", cfg.Vendor.RestURL, DefaultRestURL)
	}
	if cfg.Vendor.Timeout != DefaultVendorTimeout {
		t.Errorf("Vendor.Timeout = %v, want default %v", cfg.Vendor.Timeout, DefaultVendorTimeout)
	}
	if cfg.Database.Postgres.Port != DefaultDBPort {
		t.Errorf("Database.Postgres.Port = %d, want default %d", cfg.Database.Postgres.Port, DefaultDBPort)
	}
	if cfg.Cache.QuoteTTL != DefaultQuoteTTL {
		t.Errorf("Cache.QuoteTTL = %v, want default %v", cfg.Cache.QuoteTTL, DefaultQuoteTTL)
	}
	if cfg.Ensure.Concurrency != DefaultEnsureConcurrency {
		t.Errorf("Ensure.Concurrency = %d, want default %d", cfg.Ensure.Concurrency, DefaultEnsureConcurrency)
	}
	if cfg.Ensure.SoftTimeout != DefaultEnsureSoftTimeout {
		t.Errorf("Ensure.SoftTimeout = %v, want default %v", cfg.Ensure.SoftTimeout, DefaultEnsureSoftTimeout)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, DefaultServerPort)
	}
}

func TestValidate(t *testing.T) {
	validDB := DBConfig{
		Host: "localhost", Name: "db", User: "user", Password: "pw",
		MaxConns: 10, MinConns: 2,
	}

	tests := []struct {
		name    string
		cfg     PulseConfig
		wantErr string
	}{
		{
			name:    "missing instance id",
			cfg:     PulseConfig{},
			wantErr: "instance.id is required",
		},
		{
			name: "missing vendor token",
			cfg: PulseConfig{
				Instance: InstanceConfig{ID: "test"},
			},
			wantErr: "vendor.api_token is required",
		},
		{
			name: "missing postgres host",
			cfg: PulseConfig{
				Instance: InstanceConfig{ID: "test"},
				Vendor:   VendorConfig{APIToken: "tok"},
			},
			wantErr: "database.postgres.host is required",
		},
		{
			name: "missing postgres password",
			cfg: PulseConfig{
				Instance: InstanceConfig{ID: "test"},
				Vendor:   VendorConfig{APIToken: "tok"},
				Database: DatabaseConfig{
					Postgres: DBConfig{Host: "localhost", Name: "db", User: "user"},
				},
			},
			wantErr: "database.postgres.password is required",
		},
		{
			name: "min_conns exceeds max_conns",
			cfg: PulseConfig{
				Instance: InstanceConfig{ID: "test"},
				Vendor:   VendorConfig{APIToken: "tok"},
				Database: DatabaseConfig{
					Postgres: DBConfig{
						Host: "localhost", Name: "db", User: "user", Password: "pw",
						MaxConns: 2, MinConns: 10,
					},
				},
			},
			wantErr: "min_conns",
		},
		{
			name: "zero ensure concurrency",
			cfg: PulseConfig{
				Instance: InstanceConfig{ID: "test"},
				Vendor:   VendorConfig{APIToken: "tok"},
				Database: DatabaseConfig{Postgres: validDB},
				Ensure:   EnsureConfig{Concurrency: 0, SoftTimeout: time.Second},
			},
			wantErr: "ensure.concurrency",
		},
		{
			name: "valid",
			cfg: PulseConfig{
				Instance: InstanceConfig{ID: "test"},
				Vendor:   VendorConfig{APIToken: "tok"},
				Database: DatabaseConfig{Postgres: validDB},
				Ensure:   EnsureConfig{Concurrency: 2, SoftTimeout: 50 * time.Second},
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded for a missing file")
	}
}
