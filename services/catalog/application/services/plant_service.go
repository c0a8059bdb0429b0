package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/plantcatalog/pkg/auth"
	pkgcache "github.com/ghuser/plantcatalog/pkg/cache"
	pkgevents "github.com/ghuser/plantcatalog/pkg/events"
	"github.com/ghuser/plantcatalog/pkg/logger"
	"github.com/ghuser/plantcatalog/pkg/telemetry"
	catalogdomain "github.com/ghuser/plantcatalog/services/catalog/domain"
	domainevents "github.com/ghuser/plantcatalog/services/catalog/domain/events"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
	"github.com/ghuser/plantcatalog/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/plantcatalog/services/catalog/domain/services"
)

const cacheWriteTimeout = 2 * time.Second

// PlantCache is the by-id read model. Get returns redis.Nil on a miss.
type PlantCache interface {
	Get(ctx context.Context, id string) (*pkgcache.CachedPlant, error)
	Set(ctx context.Context, p *pkgcache.CachedPlant) error
}

// CategoryCache holds the distinct category list. Get returns redis.Nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, categories []string) error
	Invalidate(ctx context.Context) error
}

// EventPublisher is satisfied by *events.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// PlantService orchestrates the catalog use cases. Caches and the publisher
// are optional; a nil value disables that concern.
type PlantService struct {
	repo       repositories.PlantRepository
	plants     PlantCache
	categories CategoryCache
	publisher  EventPublisher
	metrics    *telemetry.CatalogMetrics
	log        logger.Logger
}

// NewPlantService returns a PlantService wired with the given collaborators.
func NewPlantService(
	repo repositories.PlantRepository,
	plants PlantCache,
	categories CategoryCache,
	publisher EventPublisher,
	metrics *telemetry.CatalogMetrics,
	log logger.Logger,
) *PlantService {
	return &PlantService{
		repo:       repo,
		plants:     plants,
		categories: categories,
		publisher:  publisher,
		metrics:    metrics,
		log:        log,
	}
}

// List runs the listing pipeline: count the matches, then fetch one sorted
// page. total always reflects the filter, not the page.
func (s *PlantService) List(ctx context.Context, q models.ListQuery) (*models.PlantPage, error) {
	total, err := s.repo.Count(ctx, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("count plants: %w", err)
	}

	var items []*models.Plant
	if int64(q.Offset()) < total {
		items, err = s.repo.Find(ctx, q.Filter, repositories.FindOpts{
			Sort:   q.Sort,
			Limit:  q.Limit,
			Offset: q.Offset(),
		})
		if err != nil {
			return nil, fmt.Errorf("find plants: %w", err)
		}
	}

	page := models.NewPlantPage(items, total, q)
	s.metrics.ListResults(ctx, len(page.Items), !q.Filter.IsEmpty())
	return page, nil
}

// Categories returns every distinct category, served from cache when possible.
func (s *PlantService) Categories(ctx context.Context) ([]string, error) {
	if s.categories != nil {
		cached, err := s.categories.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "category cache read failed", "error", err)
		}
	}

	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}

	if s.categories != nil {
		if err := s.categories.Set(ctx, categories); err != nil {
			s.log.WarnContext(ctx, "category cache write failed", "error", err)
		}
	}
	return categories, nil
}

// GetByID retrieves a Plant using a read-through cache:
//  1. Check Redis first.
//  2. On a miss (or cache error), query the store.
//  3. Warm the cache asynchronously with the store result.
func (s *PlantService) GetByID(ctx context.Context, id string) (*models.Plant, error) {
	if s.plants != nil {
		cached, err := s.plants.Get(ctx, id)
		if err == nil {
			return fromCached(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "plant cache read failed", "plant_id", id, "error", err)
		}
	}

	plant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}

	if s.plants != nil {
		warmCtx := context.WithoutCancel(ctx)
		go func() {
			ctx, cancel := context.WithTimeout(warmCtx, cacheWriteTimeout)
			defer cancel()
			if err := s.plants.Set(ctx, ToCached(plant)); err != nil {
				s.log.WarnContext(ctx, "plant cache write failed", "plant_id", plant.ID, "error", err)
			}
		}()
	}
	return plant, nil
}

// Create validates and stores one plant. The caller must carry the admin
// credential in ctx.
func (s *PlantService) Create(ctx context.Context, in models.NewPlantParams) (*models.Plant, error) {
	if err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	plant, err := buildPlant(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, plant); err != nil {
		return nil, fmt.Errorf("save plant: %w", err)
	}

	s.afterInsert(ctx, []*models.Plant{plant}, domainevents.SourceAdmin)
	s.log.InfoContext(ctx, "plant created", "plant_id", plant.ID, "name", plant.Name.String())
	return plant, nil
}

// Seed stores a batch of plants; an empty batch stores SamplePlants. Every
// entry is validated before anything is written, so one bad entry rejects
// the whole batch. Existing plants are left untouched.
func (s *PlantService) Seed(ctx context.Context, inputs []models.NewPlantParams) (int, error) {
	if err := auth.RequireAdmin(ctx); err != nil {
		return 0, err
	}
	if len(inputs) == 0 {
		inputs = SamplePlants()
	}

	plants := make([]*models.Plant, len(inputs))
	for i, in := range inputs {
		p, err := buildPlant(in)
		if err != nil {
			return 0, indexError(i, err)
		}
		plants[i] = p
	}

	if err := s.repo.InsertMany(ctx, plants); err != nil {
		return 0, fmt.Errorf("seed plants: %w", err)
	}

	s.afterInsert(ctx, plants, domainevents.SourceSeed)
	s.log.InfoContext(ctx, "catalog seeded", "count", len(plants))
	return len(plants), nil
}

// afterInsert runs the best-effort side effects of a successful write:
// drop the category cache, publish one event per plant, count them.
func (s *PlantService) afterInsert(ctx context.Context, plants []*models.Plant, source string) {
	if s.categories != nil {
		if err := s.categories.Invalidate(ctx); err != nil {
			s.log.WarnContext(ctx, "category cache invalidation failed", "error", err)
		}
	}
	for _, p := range plants {
		s.publishCreated(ctx, p, source)
	}
	s.metrics.PlantsCreated(ctx, len(plants), source)
}

func (s *PlantService) publishCreated(ctx context.Context, p *models.Plant, source string) {
	if s.publisher == nil {
		return
	}
	evt := domainevents.NewPlantCreatedEvent(p, source)
	msg, err := pkgevents.NewJSONMessage(evt.EventID.String(), evt.Version, evt)
	if err == nil {
		err = s.publisher.Publish(ctx, domainevents.TopicPlantCreated, msg)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "publish plant.created failed",
			"plant_id", p.ID,
			"event_id", evt.EventID,
			"error", err,
		)
	}
}

// buildPlant normalises categories, applies domain defaults and checks the
// aggregate invariants.
func buildPlant(in models.NewPlantParams) (*models.Plant, error) {
	in.Categories = domainsvcs.NormalizeCategories(in.Categories)
	plant, err := models.NewPlant(in)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidatePlantForCreation(plant); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPlant, err)
	}
	return plant, nil
}

// indexError prefixes a batch entry's validation message with its position.
func indexError(i int, err error) error {
	var ve *catalogdomain.ValidationError
	if errors.As(err, &ve) {
		return catalogdomain.NewValidationError(
			fmt.Sprintf("plants[%d].%s", i, ve.Field),
			fmt.Sprintf("plants[%d]: %s", i, ve.Message),
		)
	}
	return fmt.Errorf("plants[%d]: %w", i, err)
}

// ToCached maps a Plant to its cache read model.
func ToCached(p *models.Plant) *pkgcache.CachedPlant {
	return &pkgcache.CachedPlant{
		ID:          p.ID,
		Name:        p.Name.String(),
		Categories:  p.Categories,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

func fromCached(c *pkgcache.CachedPlant) *models.Plant {
	categories := c.Categories
	if categories == nil {
		categories = []string{}
	}
	return &models.Plant{
		ID:          c.ID,
		Name:        models.PlantName(c.Name),
		Categories:  categories,
		Price:       c.Price,
		Description: c.Description,
		Image:       c.Image,
		InStock:     c.InStock,
		CreatedAt:   c.CreatedAt,
	}
}
