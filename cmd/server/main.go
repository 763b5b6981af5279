package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitk-cp/logos/internal/api"
	"github.com/Harshitk-cp/logos/internal/config"
	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}

	zcfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(config.LogLevel())
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg.Level = level
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	tuning, err := reasoning.LoadTuning(config.TuningFile())
	if err != nil {
		logger.Fatal("failed to load tuning", zap.Error(err))
	}
	if n := config.HistoryCap(); n > 0 {
		tuning.HistoryCap = n
	}

	var rnd domain.RandomSource = reasoning.NewRandomSource()
	if seed := config.RandomSeed(); seed != 0 {
		rnd = reasoning.NewKeyedSource(seed)
	}
	engine := reasoning.NewEngine(knowledge.Default(), rnd, logger, reasoning.WithTuning(tuning))

	ctx := context.Background()

	var pool *pgxpool.Pool
	if dbURL := config.DatabaseURL(); dbURL != "" {
		pool, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		logger.Info("connected to database")
	} else {
		logger.Info("DATABASE_URL not set, cases kept in memory only")
	}

	app := api.NewApp(pool, engine, logger)

	if pool != nil {
		warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		n, err := app.Learning.WarmStart(warmCtx, tuning.HistoryCap)
		cancel()
		if err != nil {
			logger.Warn("warm start failed", zap.Error(err))
		} else {
			logger.Info("history restored", zap.Int("cases", n))
		}
	}

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	app.Close()

	logger.Info("server stopped")
}
