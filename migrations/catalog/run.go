package main

import (
	"log/slog"
	"os"

	"github.com/ghuser/plantcatalog/migrations"
	"github.com/ghuser/plantcatalog/pkg/config"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	if err := migrator.RunMigrations(cfg.EventsDatabaseURL, migrations.Catalog, log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("catalog migrations applied")
}
