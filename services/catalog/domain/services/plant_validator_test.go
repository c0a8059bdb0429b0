package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"trims", []string{" Indoor ", "Low Light"}, []string{"Indoor", "Low Light"}},
		{"drops blanks", []string{"", "  ", "Succulent"}, []string{"Succulent"}},
		{"keeps order and duplicates", []string{"b", "a", "b"}, []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCategories(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeCategories(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePlantForCreation(t *testing.T) {
	valid := func() *models.Plant {
		return &models.Plant{
			Name:       "Snake Plant",
			Categories: []string{"indoor"},
			Price:      399,
			CreatedAt:  time.Now().UTC(),
		}
	}

	t.Run("nil plant returns error", func(t *testing.T) {
		if err := ValidatePlantForCreation(nil); err == nil {
			t.Fatal("expected error for nil plant")
		}
	})

	t.Run("valid plant returns nil", func(t *testing.T) {
		if err := ValidatePlantForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero price is valid", func(t *testing.T) {
		p := valid()
		p.Price = 0
		if err := ValidatePlantForCreation(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(p *models.Plant)
	}{
		{"untrimmed name", func(p *models.Plant) { p.Name = " Fern" }},
		{"empty name", func(p *models.Plant) { p.Name = "" }},
		{"negative price", func(p *models.Plant) { p.Price = -0.01 }},
		{"nil categories", func(p *models.Plant) { p.Categories = nil }},
		{"zero CreatedAt", func(p *models.Plant) { p.CreatedAt = time.Time{} }},
		{"preassigned id", func(p *models.Plant) { p.ID = "64b7f0c2a1e4c3d2b1a09f8e" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			if err := ValidatePlantForCreation(p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
