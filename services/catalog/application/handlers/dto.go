package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	pkgvalidator "github.com/ghuser/plantcatalog/pkg/validator"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

const msgPriceNotNumber = "Price must be a number"

var jsonNull = []byte("null")

// PlantResponse is the JSON view of a stored plant.
type PlantResponse struct {
	ID          string    `json:"_id"         example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Name        string    `json:"name"        example:"Money Plant"`
	Categories  []string  `json:"categories"  example:"Indoor,Air Purifying"`
	Price       float64   `json:"price"       example:"399"`
	Description string    `json:"description" example:"Easy to grow indoor plant that brings prosperity."`
	Image       string    `json:"image"       example:"/placeholder.svg"`
	InStock     bool      `json:"inStock"     example:"true"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
} // @name Plant

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Plant name is required"`
} // @name ErrorResponse

func toPlantResponse(p *models.Plant) PlantResponse {
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	return PlantResponse{
		ID:          p.ID,
		Name:        p.Name.String(),
		Categories:  categories,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

// CreatePlantRequest is the request body for POST /plants and each entry of
// a seed batch. Name presence is checked by the validator; every other field
// is coerced leniently the way the admin form submits it.
type CreatePlantRequest struct {
	Name        string       `json:"name"        validate:"notblank,max=255" errmsg:"Plant name is required" example:"Money Plant"`
	Price       Price        `json:"price"       swaggertype:"number" example:"399"`
	Categories  CategoryList `json:"categories"  swaggertype:"array,string" example:"Indoor,Air Purifying"`
	Description string       `json:"description" example:"Easy to grow indoor plant."`
	Image       string       `json:"image"       example:"https://example.com/money-plant.jpg"`
	InStock     Truthy       `json:"inStock"     swaggertype:"boolean" example:"true"`
} // @name CreatePlantRequest

func (req *CreatePlantRequest) toParams() models.NewPlantParams {
	params := models.NewPlantParams{
		Name:        req.Name,
		Categories:  []string(req.Categories),
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Price.Set {
		v := req.Price.Value
		params.Price = &v
	}
	if req.InStock.Set {
		v := req.InStock.Value
		params.InStock = &v
	}
	return params
}

// toAddParams is toParams for a single added plant, where an absent inStock
// counts as false like any other falsy value. Seed entries keep the
// in-stock default through toParams.
func (req *CreatePlantRequest) toAddParams() models.NewPlantParams {
	params := req.toParams()
	inStock := req.InStock.Set && req.InStock.Value
	params.InStock = &inStock
	return params
}

// Price accepts a JSON number or a numeric string. null and "" leave it unset.
type Price struct {
	Set   bool
	Value float64
}

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return priceError()
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return priceError()
	}
	p.Set, p.Value = true, v
	return nil
}

func priceError() error {
	return &pkgvalidator.DecodeError{Field: "price", Message: msgPriceNotNumber}
}

// Truthy decodes any JSON value with JavaScript truthiness: false, 0, "" and
// null are false, everything else is true. Set records that the key was present.
type Truthy struct {
	Set   bool
	Value bool
}

func (t *Truthy) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	t.Set = true
	switch x := v.(type) {
	case nil:
		t.Value = false
	case bool:
		t.Value = x
	case float64:
		t.Value = x != 0
	case string:
		t.Value = x != ""
	default:
		t.Value = true
	}
	return nil
}

// CategoryList decodes a JSON array keeping only its string entries. Any
// other JSON value decodes as an empty list.
type CategoryList []string

func (c *CategoryList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = CategoryList{}
		return nil
	}
	out := make(CategoryList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	*c = out
	return nil
}
