package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/plantcatalog/pkg/cache"
	"github.com/ghuser/plantcatalog/pkg/logger"
	catalogEvents "github.com/ghuser/plantcatalog/services/catalog/domain/events"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
	"github.com/ghuser/plantcatalog/services/catalog/domain/repositories"
)

type plantCacheWriter interface {
	Set(ctx context.Context, p *cache.CachedPlant) error
}

// handlePlantCreated returns a handler for plant.created events.
// Handlers must be idempotent; EventBus retries up to 3x on failure.
// It warms the Redis read model so the first GET /plants/{id} is a cache hit,
// then appends the activity row. Only the activity write can fail the message.
func handlePlantCreated(
	plants plantCacheWriter,
	activity repositories.ActivityRepository,
	log logger.Logger,
) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.PlantCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode plant.created: %w", err)
		}

		if err := plants.Set(ctx, cachedPlantFromEvent(evt)); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			log.WarnContext(ctx, "cache warm failed for plant.created",
				"plant_id", evt.PlantID, "error", err)
		} else {
			log.InfoContext(ctx, "cache warmed", "plant_id", evt.PlantID)
		}

		inserted, err := activity.Record(ctx, &models.PlantActivity{
			EventID:    evt.EventID,
			PlantID:    evt.PlantID,
			PlantName:  evt.Name,
			Price:      evt.Price,
			Source:     evt.Source,
			OccurredAt: evt.OccurredAt,
		})
		if err != nil {
			return fmt.Errorf("record plant activity: %w", err)
		}
		if !inserted {
			log.InfoContext(ctx, "duplicate plant.created skipped",
				"plant_id", evt.PlantID, "event_id", evt.EventID)
		}
		return nil
	}
}

func cachedPlantFromEvent(evt catalogEvents.PlantCreatedEvent) *cache.CachedPlant {
	categories := evt.Categories
	if categories == nil {
		categories = []string{}
	}
	return &cache.CachedPlant{
		ID:          evt.PlantID,
		Name:        evt.Name,
		Categories:  categories,
		Price:       evt.Price,
		Description: evt.Description,
		Image:       evt.Image,
		InStock:     evt.InStock,
		CreatedAt:   evt.OccurredAt,
	}
}
