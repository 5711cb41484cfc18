package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gomonte/adapters/postgres"
	"gomonte/app"
	"gomonte/internal"
	"gomonte/internal/config"
	"gomonte/internal/testkit"
	"gomonte/ports"
	"gomonte/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()

	var repo ports.RunRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if err := postgres.Migrate(context.Background(), db); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		repo = postgres.NewRunRepository(db)
		logger.Info("using PostgreSQL run repository")
	} else {
		repo = testkit.NewInMemoryRunRepository()
		logger.Info("DATABASE_URL not set, using in-memory run repository")
	}

	runs := app.NewRunService(repo, logger)
	server := ui.NewApp(runs, cfg.Simulation, logger)

	if err := server.Serve(cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
