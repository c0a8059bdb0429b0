package repositories

import (
	"context"

	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// FindOpts contains sort and pagination parameters for Find.
type FindOpts struct {
	Sort   models.SortSpec
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// PlantRepository is the persistence interface for the Plant aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Plants are append-only: there is no update or delete.
type PlantRepository interface {
	// Insert stores a new plant and sets its ID.
	Insert(ctx context.Context, plant *models.Plant) error

	// InsertMany stores plants in order and sets their IDs. It stops at the
	// first failure; callers validate the whole batch beforehand.
	InsertMany(ctx context.Context, plants []*models.Plant) error

	// GetByID returns domain.ErrPlantNotFound for unknown or malformed ids.
	GetByID(ctx context.Context, id string) (*models.Plant, error)

	// Find returns plants matching filter, sorted by opts.Sort then by id.
	Find(ctx context.Context, filter models.PlantFilter, opts FindOpts) ([]*models.Plant, error)

	// Count returns the number of plants matching filter, ignoring pagination.
	Count(ctx context.Context, filter models.PlantFilter) (int64, error)

	// DistinctCategories returns every category value in use, unordered.
	DistinctCategories(ctx context.Context) ([]string, error)
}
