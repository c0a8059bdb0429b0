package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// TopicPlantCreated is the Watermill topic published when a Plant is added.
const TopicPlantCreated = "plant.created"

// Sources of a PlantCreatedEvent.
const (
	SourceAdmin = "admin"
	SourceSeed  = "seed"
)

// PlantCreatedEvent is published after a new Plant is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicPlantCreated).
type PlantCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	PlantID     string    `json:"plant_id"`
	Name        string    `json:"name"`
	Categories  []string  `json:"categories"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	InStock     bool      `json:"in_stock"`
	Source      string    `json:"source"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewPlantCreatedEvent builds the version 1 event for a stored plant.
func NewPlantCreatedEvent(p *models.Plant, source string) PlantCreatedEvent {
	return PlantCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		PlantID:     p.ID,
		Name:        p.Name.String(),
		Categories:  p.Categories,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		InStock:     p.InStock,
		Source:      source,
		OccurredAt:  p.CreatedAt,
	}
}
