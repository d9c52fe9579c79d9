package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the time ledger application
type Config struct {
	Database    DatabaseConfig
	Ledger      LedgerConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `env:"TL_DB_DIR"`
	Filename     string        `env:"TL_DB_FILENAME"`
	QueryTimeout time.Duration `env:"TL_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"TL_DB_WRITE_TIMEOUT"`
}

// LedgerConfig holds engine-related configuration
type LedgerConfig struct {
	AccrualInterval     time.Duration `env:"TL_ACCRUAL_INTERVAL"`
	DefaultInterestRate float64       `env:"TL_DEFAULT_INTEREST_RATE"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TL_TIME_DISPLAY_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TL_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timeledger")

	return &Config{
		Database: DatabaseConfig{
			Dir:          defaultDBDir,
			Filename:     "ledger.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Ledger: LedgerConfig{
			AccrualInterval:     time.Minute,
			DefaultInterestRate: 1.1,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// Load creates a configuration from defaults overridden by environment
// variables
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}
