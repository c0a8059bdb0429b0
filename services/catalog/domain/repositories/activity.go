package repositories

import (
	"context"

	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// ActivityRepository persists the plant activity log.
type ActivityRepository interface {
	// Record stores a; recording the same EventID twice is a no-op and
	// reports inserted=false.
	Record(ctx context.Context, a *models.PlantActivity) (inserted bool, err error)

	// CountByPlant returns how many activity rows reference plantID.
	CountByPlant(ctx context.Context, plantID string) (int64, error)
}
