// Package cli implements the vocabsrs commands.
package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/internal/config"
	"github.com/example/vocabsrs/internal/database"
	"github.com/example/vocabsrs/internal/engine"
)

var (
	configPath string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "vocabsrs",
	Short: "Spaced-repetition scheduler for vocabulary learning",
	Long: "vocabsrs schedules vocabulary reviews with interchangeable " +
		"algorithms (SM-2, session-optimized, expanding retrieval) over a " +
		"SQLite- or Postgres-backed word store.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $VOCABSRS_CONFIG or vocabsrs.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

// Execute runs the CLI.
func Execute() error {
	return RootCmd.Execute()
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("VOCABSRS_CONFIG"); env != "" {
		return env
	}
	return "vocabsrs.toml"
}

func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

func newLogger(cfg *config.Config) *bolt.Logger {
	if cfg.Log.Format == "json" {
		return bolt.New(bolt.NewJSONHandler(os.Stderr))
	}
	l := bolt.New(bolt.NewConsoleHandler(os.Stderr))
	if !verbose && !cfg.Log.Verbose {
		l.SetLevel(bolt.WARN)
	}
	return l
}

// openEngine wires config, database and logger into an Engine. The
// returned closer shuts the database down.
func openEngine() (*engine.Engine, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Connect(database.Config{
		Driver: cfg.Database.Type,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	eng := engine.New(database.NewItemRepository(db), newLogger(cfg))
	return eng, cfg, func() { closeDB(db) }, nil
}

func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
