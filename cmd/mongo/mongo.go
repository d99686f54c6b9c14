package mongoclient

import (
	"context"
	"fmt"
	"time"

	"github.com/houzze/houzze-api/cmd/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// New connects to MongoDB, verifies connectivity and returns the configured database handle.
func New(cfg *config.Config) (*mongo.Database, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("unable to connect mongo at %s: %w", cfg.Mongo.URI, err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("unable to ping mongo at %s: %w", cfg.Mongo.URI, err)
	}

	client = c
	return c.Database(cfg.Mongo.Database), nil
}

func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
