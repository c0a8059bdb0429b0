package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/plantcatalog/migrations"
	"github.com/ghuser/plantcatalog/pkg/database"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/pkg/migrator"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// Integration test, skipped unless EVENTS_DATABASE_URL is set.
func TestActivityRepository_RecordIsIdempotent(t *testing.T) {
	url := os.Getenv("EVENTS_DATABASE_URL")
	if url == "" {
		t.Skip("EVENTS_DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	log := logger.NewNop()

	require.NoError(t, migrator.RunMigrations(url, migrations.Catalog, log))

	db, err := database.NewPool(ctx, url, log)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	repo := NewActivityRepository(db)
	plantID := uuid.NewString()[:24]
	a := &models.PlantActivity{
		EventID:    uuid.New(),
		PlantID:    plantID,
		PlantName:  "Snake Plant",
		Price:      499,
		Source:     "admin",
		OccurredAt: time.Now().UTC(),
	}

	inserted, err := repo.Record(ctx, a)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Record(ctx, a)
	require.NoError(t, err)
	assert.False(t, inserted, "redelivered event must not insert twice")

	n, err := repo.CountByPlant(ctx, plantID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
