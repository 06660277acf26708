package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vegichef/backend/config"
	"github.com/vegichef/backend/internal/database"
	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/service"
)

func main() {
	file := flag.String("file", "", "Path to recipes.json (overrides CATALOG_FILE and the S3 source)")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall import timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if *file != "" {
		cfg.Catalog.File = *file
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(ctx, db, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	src, err := openCatalog(ctx, cfg.Catalog)
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}
	defer src.Close()

	entries, err := service.DecodeCatalog(src)
	if err != nil {
		logger.Fatal("failed to read catalog", zap.Error(err))
	}

	stats, err := service.NewCatalogService(db).Import(ctx, entries)
	if err != nil {
		logger.Fatal("failed to import catalog", zap.Error(err))
	}

	fmt.Printf("Successfully imported %d recipes\n", stats.Recipes)
	fmt.Printf("Total unique ingredients: %d\n", stats.Ingredients)
	fmt.Printf("Total unique tags: %d\n", stats.Tags)
}

const defaultCatalogFile = "recipes.json"

// openCatalog prefers a local file, then the configured S3 object, then
// recipes.json in the working directory.
func openCatalog(ctx context.Context, catalog config.CatalogConfig) (io.ReadCloser, error) {
	if catalog.File == "" && catalog.S3Bucket == "" {
		catalog.File = defaultCatalogFile
	}
	if catalog.File != "" {
		logger.Info("reading catalog from file", zap.String("path", catalog.File))
		return os.Open(catalog.File)
	}

	store, err := config.NewS3Config(ctx, catalog)
	if err != nil {
		return nil, err
	}
	logger.Info("reading catalog from s3", zap.String("bucket", catalog.S3Bucket), zap.String("key", catalog.S3Key))
	return store.OpenObject(ctx, catalog.S3Key)
}
