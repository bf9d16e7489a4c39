package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/studio-ops/internal/api"
	"github.com/Spok95/studio-ops/internal/config"
	"github.com/Spok95/studio-ops/internal/domain/assignments"
	"github.com/Spok95/studio-ops/internal/domain/categories"
	"github.com/Spok95/studio-ops/internal/domain/inventory"
	"github.com/Spok95/studio-ops/internal/infra/db"
	httpx "github.com/Spok95/studio-ops/internal/infra/http"
	"github.com/Spok95/studio-ops/internal/infra/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	invRepo := inventory.NewRepo(pool)
	catRepo := categories.NewRepo(pool)
	asgRepo := assignments.NewRepo(pool)

	invSvc := inventory.NewService(invRepo)
	catSvc := categories.NewService(catRepo, invRepo)
	asgSvc := assignments.NewService(asgRepo, invRepo)

	handler := api.New(catSvc, invSvc, asgSvc, log).Router()

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, handler)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
