package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want sqlite", cfg.Database.Type)
	}
	if cfg.Scheduler.ScanMinutes != 60 {
		t.Errorf("ScanMinutes = %d, want 60", cfg.Scheduler.ScanMinutes)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.toml")
	content := `
[database]
type = "postgres"
dsn = "postgres://localhost/vocab"

[review]
algorithm = "expanding"
limit = 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Type != "postgres" || cfg.Database.DSN != "postgres://localhost/vocab" {
		t.Errorf("database section not applied: %+v", cfg.Database)
	}
	if cfg.Review.Algorithm != "expanding" || cfg.Review.Limit != 5 {
		t.Errorf("review section not applied: %+v", cfg.Review)
	}
	// Untouched sections keep defaults.
	if cfg.Scheduler.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want default 10", cfg.Scheduler.BatchSize)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.toml")
	if err := os.WriteFile(path, []byte("[database]\ntype = \"sqlite\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("SCAN_START_HOUR", "6")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Database.Type != "postgres" {
		t.Errorf("Database.Type = %q, env should win", cfg.Database.Type)
	}
	if cfg.Scheduler.StartHour != 6 {
		t.Errorf("StartHour = %d, want 6", cfg.Scheduler.StartHour)
	}
}

func TestExampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.toml")
	if err := os.WriteFile(path, []byte(ExampleConfig()), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("ExampleConfig does not parse: %v", err)
	}
}
