package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const catalogMeterName = "github.com/ghuser/plantcatalog/catalog"

// CatalogMetrics holds the catalog's business instruments. A nil
// *CatalogMetrics is valid and records nothing.
type CatalogMetrics struct {
	plantsCreated metric.Int64Counter
	listResults   metric.Int64Histogram
}

// NewCatalogMetrics registers the catalog instruments on mp.
func NewCatalogMetrics(mp metric.MeterProvider) (*CatalogMetrics, error) {
	meter := mp.Meter(catalogMeterName)

	created, err := meter.Int64Counter("catalog.plants.created",
		metric.WithDescription("Plants inserted into the catalog"),
		metric.WithUnit("{plant}"),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog.plants.created: %w", err)
	}

	results, err := meter.Int64Histogram("catalog.list.results",
		metric.WithDescription("Plants returned per listing page"),
		metric.WithUnit("{plant}"),
		metric.WithExplicitBucketBoundaries(0, 1, 5, 12, 25, 50, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog.list.results: %w", err)
	}

	return &CatalogMetrics{plantsCreated: created, listResults: results}, nil
}

// PlantsCreated adds n to the created counter, tagged with source.
func (m *CatalogMetrics) PlantsCreated(ctx context.Context, n int, source string) {
	if m == nil {
		return
	}
	m.plantsCreated.Add(ctx, int64(n), metric.WithAttributes(attribute.String("source", source)))
}

// ListResults records the size of one listing page.
func (m *CatalogMetrics) ListResults(ctx context.Context, n int, filtered bool) {
	if m == nil {
		return
	}
	m.listResults.Record(ctx, int64(n), metric.WithAttributes(attribute.Bool("filtered", filtered)))
}
