package postgres

import (
	"context"
	"fmt"

	"github.com/ghuser/plantcatalog/pkg/database"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
	"github.com/ghuser/plantcatalog/services/catalog/domain/repositories"
)

const (
	insertActivitySQL = `
INSERT INTO catalog.plant_activity (event_id, plant_id, plant_name, price, source, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (event_id) DO NOTHING`

	countActivityByPlantSQL = `
SELECT count(*) FROM catalog.plant_activity WHERE plant_id = $1`
)

// ActivityRepository implements repositories.ActivityRepository against PostgreSQL.
type ActivityRepository struct {
	db *database.Database
}

var _ repositories.ActivityRepository = (*ActivityRepository)(nil)

// NewActivityRepository returns an ActivityRepository backed by the given database.
func NewActivityRepository(db *database.Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Record inserts the activity row. Redelivered events hit the event_id
// primary key and are skipped.
func (r *ActivityRepository) Record(ctx context.Context, a *models.PlantActivity) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx, insertActivitySQL,
		a.EventID,
		a.PlantID,
		a.PlantName,
		a.Price,
		a.Source,
		a.OccurredAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert plant activity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert plant activity: rows affected: %w", err)
	}
	return n == 1, nil
}

// CountByPlant returns the number of activity rows for plantID.
func (r *ActivityRepository) CountByPlant(ctx context.Context, plantID string) (int64, error) {
	var n int64
	if err := r.db.DB().QueryRowContext(ctx, countActivityByPlantSQL, plantID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count plant activity: %w", err)
	}
	return n, nil
}
