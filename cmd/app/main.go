package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/auth"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/bootstrap"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/config"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/database"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/leaderboard"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/notify"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/scheduler"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/server"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/treasury"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/wallet"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/worker"
)

// Database pool tuning
const (
	dbMaxConns    = 10
	dbMaxIdleTime = 5 * time.Minute
	dbMaxLifetime = 30 * time.Minute
)

// Background job configuration
const (
	purgeInterval   = 24 * time.Hour
	poolWorkerCount = 2
	poolQueueSize   = 16
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	walletClient := wallet.NewClient(cfg.WalletAPIURL, cfg.WalletAPIKey, cfg.AssetAddress, cfg.ChainID)
	notifyClient := notify.NewClient(cfg.NotifyURL, cfg.NotifyAPIKey)

	clock := clockwork.NewRealClock()
	gate := auth.NewGate(cfg.CronSecret, repos.Settings)
	treasuryService := treasury.NewService(walletClient, walletClient, clock)
	leaderboardService := leaderboard.NewService(repos.Leaderboard)

	distributionService := distribution.NewService(
		gate,
		treasuryService,
		walletClient,
		repos.Distribution,
		repos.Leaderboard,
		repos.Settings,
		notifyClient,
		cfg.SpendingGrant(),
		cfg.RewardPoolAmount,
		cfg.PayoutConcurrency,
		clock,
	)

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, distributionService, leaderboardService)

	weeklyWorker := worker.NewWeeklyDistributionWorker(distributionService, cfg.CronSecret)
	weeklyWorker.Start()

	workerPool := worker.NewPool(poolWorkerCount, poolQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(purgeInterval, worker.NewPurgeJob(distributionService))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:                   srv,
		DistributionService:      distributionService,
		WeeklyDistributionWorker: weeklyWorker,
		Scheduler:                sched,
		WorkerPool:               workerPool,
	})
}
