package models

import (
	"fmt"
	"time"

	"github.com/ghuser/plantcatalog/services/catalog/domain"
)

var (
	errNameRequired  = domain.NewValidationError("name", "Plant name is required")
	errNameTooLong   = domain.NewValidationError("name", fmt.Sprintf("Plant name must not exceed %d characters", maxPlantNameLength))
	errPriceRequired = domain.NewValidationError("price", "Price is required")
	errPriceNegative = domain.NewValidationError("price", "Price must not be negative")
)

// Plant is the catalog aggregate. Plants are immutable once stored.
type Plant struct {
	ID          string // assigned by the store on insert
	Name        PlantName
	Categories  []string
	Price       float64
	Description string
	Image       string
	InStock     bool
	CreatedAt   time.Time
}

// NewPlantParams carries optional input for NewPlant. Nil pointers mean the
// field was absent, which is distinct from a zero value: a zero price is a
// valid price, a missing one is not.
type NewPlantParams struct {
	Name        string
	Price       *float64
	Categories  []string
	Description string
	Image       string
	InStock     *bool
}

// NewPlant validates params, applies defaults and stamps CreatedAt at the
// millisecond precision the document store keeps.
// Errors are *domain.ValidationError values wrapping domain.ErrInvalidPlant.
func NewPlant(p NewPlantParams) (*Plant, error) {
	name, err := NewPlantName(p.Name)
	if err != nil {
		return nil, err
	}
	if p.Price == nil {
		return nil, errPriceRequired
	}
	if *p.Price < 0 {
		return nil, errPriceNegative
	}

	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}

	return &Plant{
		Name:        name,
		Categories:  categories,
		Price:       *p.Price,
		Description: p.Description,
		Image:       p.Image,
		InStock:     inStock,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}, nil
}
