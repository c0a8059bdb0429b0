// Package docstore owns the process-wide MongoDB connection.
package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ghuser/plantcatalog/pkg/config"
	"github.com/ghuser/plantcatalog/pkg/logger"
)

const (
	connectTimeout         = 10 * time.Second
	serverSelectionTimeout = 5 * time.Second
)

// Client wraps mongo.Client bound to the configured database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB from cfg.MongoURL and verifies connectivity against
// the primary. It is called once at startup; a failure there is fatal.
func Connect(ctx context.Context, cfg *config.Config, log logger.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetAppName(cfg.ServiceName).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetMaxPoolSize(50).
		SetMinPoolSize(2)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := c.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("mongo connected", "database", cfg.MongoDatabase)
	return &Client{client: c, db: c.Database(cfg.MongoDatabase)}, nil
}

// Ping checks the MongoDB connection health.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// Collection returns a handle to the named collection in the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
