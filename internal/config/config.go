// Package config loads engine settings from an optional TOML file,
// then lets environment variables override the database selection the
// same way the deployment scripts always have.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Review    ReviewConfig    `toml:"review"`
	Log       LogConfig       `toml:"log"`
}

type DatabaseConfig struct {
	Type string `toml:"type"` // "sqlite" or "postgres"
	Path string `toml:"path"` // sqlite file
	DSN  string `toml:"dsn"`  // postgres connection string
}

type SchedulerConfig struct {
	ScanMinutes int `toml:"scan_minutes"` // due-scan cadence
	BatchSize   int `toml:"batch_size"`   // words per scan
	StartHour   int `toml:"start_hour"`   // scans run only inside these hours
	EndHour     int `toml:"end_hour"`
}

type ReviewConfig struct {
	Algorithm string `toml:"algorithm"` // "classic", "session" or "expanding"
	Limit     int    `toml:"limit"`     // default selection size
}

type LogConfig struct {
	Format  string `toml:"format"` // "console" or "json"
	Verbose bool   `toml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Type: "sqlite",
			Path: "data/vocab.db",
		},
		Scheduler: SchedulerConfig{
			ScanMinutes: 60,
			BatchSize:   10,
			StartHour:   8,
			EndHour:     22,
		},
		Review: ReviewConfig{
			Algorithm: "session",
			Limit:     10,
		},
		Log: LogConfig{
			Format: "console",
		},
	}
}

// Load reads the TOML file at path (missing file → defaults) and
// applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.Scheduler.ScanMinutes <= 0 {
		cfg.Scheduler.ScanMinutes = 60
	}
	if cfg.Review.Limit <= 0 {
		cfg.Review.Limit = 10
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_TYPE"); v != "" {
		c.Database.Type = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("SCAN_START_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			c.Scheduler.StartHour = h
		}
	}
	if v := os.Getenv("SCAN_END_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			c.Scheduler.EndHour = h
		}
	}
}

// ExampleConfig returns a commented sample configuration.
func ExampleConfig() string {
	return `# vocabsrs configuration

[database]
# "sqlite" or "postgres"
type = "sqlite"
path = "data/vocab.db"
# dsn = "postgres://localhost/vocab?sslmode=disable"

[scheduler]
scan_minutes = 60
batch_size   = 10
start_hour   = 8
end_hour     = 22

[review]
# "classic", "session" or "expanding"
algorithm = "session"
limit     = 10

[log]
# "console" or "json"
format  = "console"
verbose = false
`
}
