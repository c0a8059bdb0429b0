// Package memory is an in-process PlantRepository used for local development
// and tests. It honours the same filter, sort and pagination semantics as the
// MongoDB driver.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogdomain "github.com/ghuser/plantcatalog/services/catalog/domain"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
	"github.com/ghuser/plantcatalog/services/catalog/domain/repositories"
)

// PlantRepository stores plants in a slice guarded by a RWMutex.
type PlantRepository struct {
	mu     sync.RWMutex
	plants []*models.Plant
	byID   map[string]*models.Plant
}

var _ repositories.PlantRepository = (*PlantRepository)(nil)

// NewPlantRepository returns an empty repository.
func NewPlantRepository() *PlantRepository {
	return &PlantRepository{byID: make(map[string]*models.Plant)}
}

func (r *PlantRepository) Insert(ctx context.Context, plant *models.Plant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertLocked(plant)
	return nil
}

func (r *PlantRepository) InsertMany(ctx context.Context, plants []*models.Plant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range plants {
		r.insertLocked(p)
	}
	return nil
}

// insertLocked assigns an ObjectID-shaped id so ids look the same regardless
// of driver. Stored values are copies; callers may keep mutating theirs.
func (r *PlantRepository) insertLocked(p *models.Plant) {
	p.ID = primitive.NewObjectID().Hex()
	stored := clonePlant(p)
	r.plants = append(r.plants, stored)
	r.byID[stored.ID] = stored
}

func (r *PlantRepository) GetByID(ctx context.Context, id string) (*models.Plant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, catalogdomain.ErrPlantNotFound
	}
	return clonePlant(p), nil
}

func (r *PlantRepository) Find(ctx context.Context, filter models.PlantFilter, opts repositories.FindOpts) ([]*models.Plant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := r.matchLocked(filter)
	r.mu.RUnlock()

	slices.SortStableFunc(matched, comparator(opts.Sort))

	start := min(max(opts.Offset, 0), len(matched))
	end := len(matched)
	if opts.Limit > 0 {
		end = min(start+opts.Limit, len(matched))
	}

	out := make([]*models.Plant, 0, end-start)
	for _, p := range matched[start:end] {
		out = append(out, clonePlant(p))
	}
	return out, nil
}

func (r *PlantRepository) Count(ctx context.Context, filter models.PlantFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.matchLocked(filter))), nil
}

func (r *PlantRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range r.plants {
		for _, c := range p.Categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (r *PlantRepository) matchLocked(filter models.PlantFilter) []*models.Plant {
	matched := make([]*models.Plant, 0, len(r.plants))
	for _, p := range r.plants {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// comparator orders by the requested field, then by id ascending. Unknown
// fields compare equal, which leaves id order, the same as a document store
// sorting on a key no document has.
func comparator(spec models.SortSpec) func(a, b *models.Plant) int {
	dir := int(spec.Direction)
	if dir == 0 {
		dir = int(models.Ascending)
	}
	byField := fieldComparator(spec.Field)
	return func(a, b *models.Plant) int {
		if c := byField(a, b) * dir; c != 0 {
			return c
		}
		if spec.Field == "id" || spec.Field == "_id" {
			return 0
		}
		return strings.Compare(a.ID, b.ID)
	}
}

func fieldComparator(field string) func(a, b *models.Plant) int {
	switch field {
	case "name":
		return func(a, b *models.Plant) int { return strings.Compare(a.Name.String(), b.Name.String()) }
	case "price":
		return func(a, b *models.Plant) int { return cmp.Compare(a.Price, b.Price) }
	case "createdAt":
		return func(a, b *models.Plant) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "inStock":
		return func(a, b *models.Plant) int { return cmp.Compare(boolRank(a.InStock), boolRank(b.InStock)) }
	case "description":
		return func(a, b *models.Plant) int { return strings.Compare(a.Description, b.Description) }
	case "image":
		return func(a, b *models.Plant) int { return strings.Compare(a.Image, b.Image) }
	case "id", "_id":
		return func(a, b *models.Plant) int { return strings.Compare(a.ID, b.ID) }
	default:
		return func(*models.Plant, *models.Plant) int { return 0 }
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func clonePlant(p *models.Plant) *models.Plant {
	c := *p
	c.Categories = slices.Clone(p.Categories)
	if c.Categories == nil {
		c.Categories = []string{}
	}
	return &c
}
