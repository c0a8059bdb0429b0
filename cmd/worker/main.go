package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/plantcatalog/migrations"
	"github.com/ghuser/plantcatalog/pkg/app"
	"github.com/ghuser/plantcatalog/pkg/cache"
	"github.com/ghuser/plantcatalog/pkg/config"
	"github.com/ghuser/plantcatalog/pkg/database"
	"github.com/ghuser/plantcatalog/pkg/events"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/pkg/migrator"
	"github.com/ghuser/plantcatalog/pkg/telemetry"
	catalogEvents "github.com/ghuser/plantcatalog/services/catalog/domain/events"
	"github.com/ghuser/plantcatalog/services/catalog/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	tel, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer tel.Shutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// The worker owns the activity table; apply its migrations before consuming.
	if err := migrator.RunMigrations(cfg.EventsDatabaseURL, migrations.Catalog, log); err != nil {
		log.Error("failed to run catalog migrations", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	pool, err := database.NewPool(ctx, cfg.EventsDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), events.OptionsFromConfig(cfg, false), log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	if err := registerSubscribers(subCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		cancelSubs()
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubs()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	handler := handlePlantCreated(
		cache.NewPlantCache(a.Redis),
		postgres.NewActivityRepository(a.Db),
		a.Logger,
	)
	errCh, err := a.EventBus.Subscribe(ctx, catalogEvents.TopicPlantCreated, handler)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", catalogEvents.TopicPlantCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{catalogEvents.TopicPlantCreated})
	return nil
}
