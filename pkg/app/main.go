package app

import (
	"github.com/ghuser/plantcatalog/pkg/cache"
	"github.com/ghuser/plantcatalog/pkg/config"
	"github.com/ghuser/plantcatalog/pkg/database"
	"github.com/ghuser/plantcatalog/pkg/docstore"
	"github.com/ghuser/plantcatalog/pkg/events"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "plant created", "plant_id", id)
//	app.Logger.ErrorContext(ctx, "failed to list plants", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	DocStore *docstore.Client // nil when STORE_DRIVER=memory
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Metrics  *telemetry.CatalogMetrics
}
