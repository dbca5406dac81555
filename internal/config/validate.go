package config

import "fmt"

// Validate checks that required fields are present and consistent.
func (c *PulseConfig) Validate() error {
	if c.Instance.ID == "" {
		return fmt.Errorf("instance.id is required")
	}

	if c.Vendor.APIToken == "" {
		return fmt.Errorf("vendor.api_token is required")
	}

	if err := validateDB("database.postgres", c.Database.Postgres); err != nil {
		return err
	}

	if c.Ensure.Concurrency < 1 {
		return fmt.Errorf("ensure.concurrency must be at least 1")
	}
	if c.Ensure.SoftTimeout <= 0 {
		return fmt.Errorf("ensure.soft_timeout must be positive")
	}

	return nil
}

func validateDB(prefix string, db DBConfig) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) exceeds max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
