package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/example/vocabsrs/internal/cli"
)

func main() {
	// Optional .env for DB_TYPE, DB_PATH, DATABASE_URL and the scan
	// window overrides.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
