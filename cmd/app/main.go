package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tradejournal/docs"

	"tradejournal/internal/backend"
	"tradejournal/internal/calendar"
	"tradejournal/internal/checkout"
	"tradejournal/internal/config"
	"tradejournal/internal/db"
	"tradejournal/internal/logger"
	"tradejournal/internal/server"
	"tradejournal/internal/store"
	"tradejournal/internal/subscription"
	"tradejournal/internal/tracing"
	"tradejournal/internal/trade"
	"tradejournal/internal/transaction"
	"tradejournal/internal/txstore"
	"tradejournal/internal/user"

	"github.com/redis/go-redis/v9"
)

// @title Trade Journal API
// @version 1.0
// @description Companion service for the trading journal: trades, calendar, plans and Midtrans checkout.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting trade journal service")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName: "tradejournal",
		Environment: cfg.AppEnv,
		Exporter:    cfg.TraceExporter,
		PrettyPrint: cfg.AppEnv != "production",
	})
	if err != nil {
		logger.Fatalf("Failed to init tracing: %v", err)
	}

	txs, closeTxs := openTxStore(ctx, cfg)
	defer closeTxs()

	client := backend.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	st := store.New(client)

	orch := checkout.NewOrchestrator(client, st, txs,
		checkout.NewSnapWidget(cfg.MidtransClientKey, cfg.SnapScriptURL()),
		checkout.Options{
			PollInterval:    cfg.StatusPollInterval,
			MaxAttempts:     cfg.StatusPollMaxAttempts,
			PendingInterval: cfg.PendingPollInterval,
		})
	logger.Info("Checkout orchestrator initialized", "snapScript", cfg.SnapScriptURL(), "txstore", cfg.TxStoreDriver)

	srv := server.New(cfg, client, server.Handlers{
		User:         user.NewHandler(user.NewService(st, client, orch.Reset)),
		Trade:        trade.NewHandler(trade.NewService(st, cfg.InitialBalance)),
		Calendar:     calendar.NewHandler(calendar.NewService(st)),
		Subscription: subscription.NewHandler(subscription.NewService(st, txs)),
		Transaction:  transaction.NewHandler(client),
		Checkout:     checkout.NewHandler(orch),
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	orch.Dispose()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Errorf("Error flushing traces: %v", err)
	}

	logger.Info("Server stopped")
}

// openTxStore picks the lastTransaction backend from TXSTORE_DRIVER.
func openTxStore(ctx context.Context, cfg *config.Config) (txstore.Store, func()) {
	switch cfg.TxStoreDriver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatalf("Failed to connect to redis: %v", err)
		}
		logger.Info("Redis connected", "addr", cfg.RedisAddr)
		return txstore.NewRedisStore(rdb), func() { _ = rdb.Close() }
	case "memory":
		return txstore.NewMemoryStore(), func() {}
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connected", "driver", database.DriverName())

	if err := db.RunMigrations(database); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")
	return txstore.NewSQLStore(database), func() { _ = database.Close() }
}
