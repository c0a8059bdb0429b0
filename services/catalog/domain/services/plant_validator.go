// Package services contains stateless domain services for the catalog bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// NormalizeCategories trims every category and drops blank entries.
// Order is preserved and the result is never nil.
func NormalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ValidatePlantForCreation performs whole-aggregate checks on a Plant built
// by models.NewPlant before it is persisted.
func ValidatePlantForCreation(p *models.Plant) error {
	if p == nil {
		return fmt.Errorf("plant cannot be nil")
	}
	if p.Name.String() == "" || p.Name.String() != strings.TrimSpace(p.Name.String()) {
		return fmt.Errorf("plant name must be trimmed and non-empty")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.Categories == nil {
		return fmt.Errorf("categories must be a list")
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}
	if p.ID != "" {
		return fmt.Errorf("id is assigned by the store")
	}
	return nil
}
