package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/campanhas/campaigns-backend/internal/config"
	"github.com/campanhas/campaigns-backend/internal/db"
	"github.com/campanhas/campaigns-backend/internal/logger"
)

// The seeder loads the reference data the application expects: the
// institution list, positions, a starter tag set and the system user.
// Every seed file is idempotent, so re-running is safe.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Log).With().Str("component", "seeder").Logger()

	database, err := db.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	seedFiles := []string{
		"seed/system_user.sql",
		"seed/institutions.sql",
		"seed/positions.sql",
		"seed/tags.sql",
	}

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("Failed to read seed file")
		}
		if _, err := database.Exec(string(content)); err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("Failed to execute seed file")
		}
		log.Info().Str("file", filepath.Base(file)).Msg("Seeded")
	}

	log.Info().Msg("Database seeding completed")
}
