package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/plantcatalog/docs/swagger"
	"github.com/ghuser/plantcatalog/pkg/app"
	"github.com/ghuser/plantcatalog/pkg/cache"
	"github.com/ghuser/plantcatalog/pkg/config"
	"github.com/ghuser/plantcatalog/pkg/database"
	"github.com/ghuser/plantcatalog/pkg/docstore"
	"github.com/ghuser/plantcatalog/pkg/events"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/pkg/telemetry"
	catalogApi "github.com/ghuser/plantcatalog/services/catalog/application/api"
)

// @title						Plant Catalog API
// @version					1.0
// @description				Plant catalog with search, category filtering, sorting and pagination.
// @contact.name				API Support
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @host						localhost:4000
// @BasePath					/api
// @schemes					http https
// @securityDefinitions.apikey	AdminKey
// @in							header
// @name						X-Admin-Key
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer tel.Shutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	var store *docstore.Client
	if cfg.StoreDriver == config.StoreMongo {
		store, err = docstore.Connect(ctx, cfg, log)
		if err != nil {
			log.Error("failed to connect to document store", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer store.Close(context.Background()) //nolint:errcheck
		log.Info("document store connected", "database", cfg.MongoDatabase)
	}

	pool, err := database.NewPool(ctx, cfg.EventsDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), events.OptionsFromConfig(cfg, true), log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		DocStore: store,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Metrics:  tel.Catalog,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.IsDevelopment(),
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	health := httpx.HealthHandler(httpx.HealthChecks{
		DocStore: healthChecker(store),
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
	})
	r.Get("/health", health)
	r.Get("/metrics", tel.MetricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
}

// healthChecker keeps a nil *docstore.Client from becoming a non-nil
// interface, so the memory driver reports the store as disabled.
func healthChecker(c *docstore.Client) httpx.HealthChecker {
	if c == nil {
		return nil
	}
	return c
}
