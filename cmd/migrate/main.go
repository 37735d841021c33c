package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/pkg/config"
)

const migrateTimeout = 2 * time.Minute

func main() {
	dir := flag.String("dir", "migrations", "directory containing *.sql migrations")
	flag.Parse()

	cfg, err := config.LoadMigrateConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	applied, err := db.Migrate(ctx, pool, os.DirFS(*dir))
	if err != nil {
		slog.Error("migration failed", "applied", applied, "error", err)
		cleanup()
		os.Exit(1)
	}
	slog.Info("migrations up to date", "applied", len(applied))
}
