package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghuser/plantcatalog/pkg/docstore"
	catalogdomain "github.com/ghuser/plantcatalog/services/catalog/domain"
	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
	"github.com/ghuser/plantcatalog/services/catalog/domain/repositories"
)

// CollectionName is the plants collection.
const CollectionName = "plants"

// plantDocument is the stored shape of a plant.
type plantDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Categories  []string           `bson:"categories"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	InStock     bool               `bson:"inStock"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// PlantRepository implements repositories.PlantRepository against MongoDB.
type PlantRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ repositories.PlantRepository = (*PlantRepository)(nil)

// NewPlantRepository returns a PlantRepository over the plants collection.
// Every operation runs under queryTimeout.
func NewPlantRepository(client *docstore.Client, queryTimeout time.Duration) *PlantRepository {
	return &PlantRepository{coll: client.Collection(CollectionName), timeout: queryTimeout}
}

// EnsureIndexes creates the single-field indexes backing the common sort keys.
func (r *PlantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldName, Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create plant indexes: %w", err)
	}
	return nil
}

// Insert stores a new plant and assigns its ID.
func (r *PlantRepository) Insert(ctx context.Context, plant *models.Plant) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	doc := toDocument(plant)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert plant: %w", err)
	}
	plant.ID = doc.ID.Hex()
	return nil
}

// InsertMany stores plants with an ordered bulk insert and assigns their IDs.
func (r *PlantRepository) InsertMany(ctx context.Context, plants []*models.Plant) error {
	if len(plants) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	docs := make([]interface{}, len(plants))
	ids := make([]primitive.ObjectID, len(plants))
	for i, p := range plants {
		doc := toDocument(p)
		doc.ID = primitive.NewObjectID()
		ids[i] = doc.ID
		docs[i] = doc
	}
	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert plants: %w", err)
	}
	for i, p := range plants {
		p.ID = ids[i].Hex()
	}
	return nil
}

// GetByID retrieves a plant by its hex ObjectID. Malformed ids are reported
// as ErrPlantNotFound.
func (r *PlantRepository) GetByID(ctx context.Context, id string) (*models.Plant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, catalogdomain.ErrPlantNotFound
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc plantDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: fieldID, Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalogdomain.ErrPlantNotFound
		}
		return nil, fmt.Errorf("find plant: %w", err)
	}
	return toPlant(doc), nil
}

// Find returns one sorted page of plants matching filter.
func (r *PlantRepository) Find(ctx context.Context, filter models.PlantFilter, opts repositories.FindOpts) ([]*models.Plant, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	findOpts := options.Find().
		SetSort(buildSort(opts.Sort)).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cur, err := r.coll.Find(ctx, buildFilter(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("find plants: %w", err)
	}
	var docs []plantDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode plants: %w", err)
	}

	plants := make([]*models.Plant, len(docs))
	for i, doc := range docs {
		plants[i] = toPlant(doc)
	}
	return plants, nil
}

// Count returns the number of plants matching filter.
func (r *PlantRepository) Count(ctx context.Context, filter models.PlantFilter) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, buildFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return n, nil
}

// DistinctCategories returns every distinct category across all plants.
func (r *PlantRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	values, err := r.coll.Distinct(ctx, fieldCategories, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *PlantRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func toDocument(p *models.Plant) plantDocument {
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	return plantDocument{
		Name:        p.Name.String(),
		Categories:  categories,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

// toPlant maps a stored document to a domain Plant.
func toPlant(doc plantDocument) *models.Plant {
	categories := doc.Categories
	if categories == nil {
		categories = []string{}
	}
	return &models.Plant{
		ID:          doc.ID.Hex(),
		Name:        models.PlantName(doc.Name),
		Categories:  categories,
		Price:       doc.Price,
		Description: doc.Description,
		Image:       doc.Image,
		InStock:     doc.InStock,
		CreatedAt:   doc.CreatedAt.UTC(),
	}
}
