package services

import (
	"context"
	"time"

	"github.com/ghuser/plantcatalog/pkg/app"
	"github.com/ghuser/plantcatalog/pkg/cache"
	"github.com/ghuser/plantcatalog/services/catalog/domain/repositories"
	"github.com/ghuser/plantcatalog/services/catalog/infrastructure/persistence/memory"
	"github.com/ghuser/plantcatalog/services/catalog/infrastructure/persistence/mongo"
)

const indexTimeout = 10 * time.Second

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Plant *PlantService
}

// New wires all catalog application services with infrastructure from the
// Application container. The plant store is MongoDB unless no document store
// is configured, in which case the in-memory driver is used.
func New(a *app.Application) *Services {
	var (
		plantCache    PlantCache
		categoryCache CategoryCache
		publisher     EventPublisher
	)
	if a.Redis != nil {
		plantCache = cache.NewPlantCache(a.Redis)
		categoryCache = cache.NewCategoryCache(a.Redis)
	}
	if a.EventBus != nil {
		publisher = a.EventBus
	}

	return &Services{
		Plant: NewPlantService(plantRepository(a), plantCache, categoryCache, publisher, a.Metrics, a.Logger),
	}
}

func plantRepository(a *app.Application) repositories.PlantRepository {
	if a.DocStore == nil {
		a.Logger.Warn("no document store configured, using in-memory plant store")
		return memory.NewPlantRepository()
	}

	repo := mongo.NewPlantRepository(a.DocStore, a.Config.MongoQueryTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if err := repo.EnsureIndexes(ctx); err != nil {
		a.Logger.Warn("failed to ensure plant indexes", "error", err)
	}
	return repo
}
