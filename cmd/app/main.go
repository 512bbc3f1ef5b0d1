package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dapplicaio/FarmGame/internal/accrual"
	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/blend"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/config"
	"github.com/dapplicaio/FarmGame/internal/database"
	"github.com/dapplicaio/FarmGame/internal/database/postgres"
	"github.com/dapplicaio/FarmGame/internal/ledger"
	"github.com/dapplicaio/FarmGame/internal/progression"
	"github.com/dapplicaio/FarmGame/internal/server"
	"github.com/dapplicaio/FarmGame/internal/staking"
	"github.com/dapplicaio/FarmGame/internal/swap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	balance, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		slog.Error("Failed to load balance configuration", "error", err)
		os.Exit(1)
	}

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString, database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewGameRepository(pool)

	// The in-memory ledger stands in for the chain gateway adapter; the
	// service layer only sees the assets.Ledger interface.
	baseLedger := assets.NewMemoryLedger()
	assetLedger, err := assets.NewTemplateCache(baseLedger, balance.TemplateCacheSize)
	if err != nil {
		slog.Error("Failed to create template cache", "error", err)
		os.Exit(1)
	}
	transferor := assets.NewMemoryTransferor()

	locks := concurrency.NewLockManager()
	engine := accrual.NewEngine(assetLedger, balance.RatePercentPerLevel)

	balances := ledger.NewService(repo)
	stakingSvc := staking.NewService(repo, balances, engine, assetLedger, locks, balance)
	progressionSvc := progression.NewService(repo, balances, engine, assetLedger, locks, balance)
	blendSvc := blend.NewService(repo, assetLedger, locks, cfg.CollectionName)
	swapSvc := swap.NewService(repo, balances, assetLedger, transferor, locks, balance)
	deposits := staking.NewRouter(stakingSvc, blendSvc, cfg.SelfAccount)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.AdminKey, pool, server.Services{
		Ledger:      balances,
		Staking:     stakingSvc,
		Progression: progressionSvc,
		Blend:       blendSvc,
		Swap:        swapSvc,
		Deposits:    deposits,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Failed to stop server cleanly", "error", err)
		}
	}
}
