package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/plantcatalog/services/catalog/domain/events"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

func TestPlantCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.PlantCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		PlantID:    "64b7f0c2a1e4c3d2b1a09f8e",
		Name:       "Snake Plant",
		Categories: []string{"indoor"},
		Price:      399,
		InStock:    true,
		Source:     events.SourceAdmin,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "plant_id", "name", "categories", "price", "in_stock", "source", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicPlantCreated_Value(t *testing.T) {
	if events.TopicPlantCreated != "plant.created" {
		t.Errorf("expected %q, got %q", "plant.created", events.TopicPlantCreated)
	}
}

func TestNewPlantCreatedEvent(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	p := &models.Plant{
		ID:         "64b7f0c2a1e4c3d2b1a09f8e",
		Name:       "Aloe Vera",
		Categories: []string{"Succulent"},
		Price:      299,
		InStock:    true,
		CreatedAt:  created,
	}

	evt := events.NewPlantCreatedEvent(p, events.SourceSeed)

	if evt.EventID == uuid.Nil {
		t.Error("expected a generated event id")
	}
	if evt.Version != 1 {
		t.Errorf("version: got %d", evt.Version)
	}
	if evt.PlantID != p.ID || evt.Name != "Aloe Vera" || evt.Price != 299 || !evt.InStock {
		t.Errorf("unexpected event payload: %+v", evt)
	}
	if evt.Source != events.SourceSeed {
		t.Errorf("source: got %q", evt.Source)
	}
	if !evt.OccurredAt.Equal(created) {
		t.Errorf("occurred_at: got %v, want %v", evt.OccurredAt, created)
	}

	other := events.NewPlantCreatedEvent(p, events.SourceSeed)
	if other.EventID == evt.EventID {
		t.Error("event ids must be unique per publish")
	}
}
