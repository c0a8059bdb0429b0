package models

import (
	"time"

	"github.com/google/uuid"
)

// PlantActivity is an audit entry recorded once per plant.created event.
type PlantActivity struct {
	EventID    uuid.UUID
	PlantID    string
	PlantName  string
	Price      float64
	Source     string
	OccurredAt time.Time
}
