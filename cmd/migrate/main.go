package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/vegichef/backend/config"
	"github.com/vegichef/backend/internal/database"
	"github.com/vegichef/backend/internal/logger"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	migrationsDir := flag.String("dir", "migrations", "Directory holding the SQL migrations")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Database.Driver != "postgres" {
		logger.Fatal("SQL migrations require the postgres driver; sqlite is migrated on server start",
			zap.String("driver", cfg.Database.Driver))
	}

	ctx := context.Background()
	db, err := database.OpenSQL(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *rollback {
		name, err := database.RollbackLast(ctx, db, *migrationsDir)
		if errors.Is(err, database.ErrNoMigrations) {
			logger.Info("no migrations to rollback")
			return
		}
		if err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
		logger.Info("successfully rolled back migration", zap.String("file", name))
		return
	}

	applied, err := database.ApplySQLMigrations(ctx, db, *migrationsDir)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("all migrations applied successfully", zap.Strings("applied", applied))
}
