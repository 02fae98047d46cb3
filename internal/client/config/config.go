package config

import (
	"fmt"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"

	PolicyDemo  = "demo"
	PolicyExact = "exact"
)

// Config holds runtime settings for the authshell client.
//
// Fields:
//   - DatabasePath: SQLite file holding the local key-value storage.
//   - StorageDriver: "sqlite" (durable) or "memory" (lost on exit).
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - CredentialPolicy: "demo" accepts the simulated fallback passwords,
//     "exact" accepts the stored password only.
//   - SplashDelay: minimum time the loading notice stays up while the
//     session is restored.
type Config struct {
	DatabasePath     string
	StorageDriver    string
	LogLevel         string
	LogFormat        string
	CredentialPolicy string
	SplashDelay      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "authshell.db"
	c.StorageDriver = StorageSQLite
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.CredentialPolicy = PolicyDemo
	c.SplashDelay = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports values that no component can act on.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database path is required for the %s driver", StorageSQLite)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	switch c.CredentialPolicy {
	case PolicyDemo, PolicyExact:
	default:
		return fmt.Errorf("unknown credential policy %q", c.CredentialPolicy)
	}

	if c.SplashDelay < 0 {
		return fmt.Errorf("splash delay must not be negative")
	}
	return nil
}
