package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config selects the backing database. Driver is "sqlite" or
// "postgres"; Path is the sqlite file, DSN the postgres connection
// string.
type Config struct {
	Driver string
	Path   string
	DSN    string
}

// Connect opens the database and makes sure the schema exists. The
// returned handle is passed to the repositories; there is no package
// global.
func Connect(cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return connectSQLite(cfg.Path)
	case "postgres":
		return connectPostgres(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func connectSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		path = filepath.Join("data", "vocab.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers; a single connection
	// also serializes same-word updates.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func connectPostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeSchema creates the words table if it does not exist.
// Every scheduling field is stored as text; parsing happens once, in
// models.RawItem.Parse.
func initializeSchema(db *sqlx.DB) error {
	var schema string
	if db.DriverName() == "sqlite3" {
		schema = `
			CREATE TABLE IF NOT EXISTS words (
				word TEXT PRIMARY KEY COLLATE NOCASE,
				time_last_seen TEXT NOT NULL DEFAULT '0',
				correct_uses TEXT NOT NULL DEFAULT '0',
				total_uses TEXT NOT NULL DEFAULT '0',
				next_due TEXT NOT NULL DEFAULT '0',
				EF TEXT NOT NULL DEFAULT '2.5',
				interval TEXT NOT NULL DEFAULT '1',
				repetitions TEXT NOT NULL DEFAULT '0'
			)
		`
	} else {
		schema = `
			CREATE TABLE IF NOT EXISTS words (
				word TEXT PRIMARY KEY,
				time_last_seen TEXT NOT NULL DEFAULT '0',
				correct_uses TEXT NOT NULL DEFAULT '0',
				total_uses TEXT NOT NULL DEFAULT '0',
				next_due TEXT NOT NULL DEFAULT '0',
				"EF" TEXT NOT NULL DEFAULT '2.5',
				interval TEXT NOT NULL DEFAULT '1',
				repetitions TEXT NOT NULL DEFAULT '0'
			);
			CREATE UNIQUE INDEX IF NOT EXISTS words_lower_idx ON words (LOWER(word));
		`
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}
	return nil
}
