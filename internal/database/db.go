package database

import (
	"context"
	"fmt"

	"github.com/kirkespor-api/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the mongo client with the application database handle
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	log      zerolog.Logger
}

// New connects to MongoDB and verifies the connection with a ping
func New(cfg *config.MongoConfig, log zerolog.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.Database),
		log:      log.With().Str("component", "database").Logger(),
	}

	db.log.Info().
		Str("database", cfg.Database).
		Msg("MongoDB connection established")

	return db, nil
}

// Collection returns a handle to the named collection
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// HealthCheck verifies the database connection is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client
func (db *DB) Close() error {
	ctx := context.Background()
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB client: %w", err)
	}
	db.log.Info().Msg("MongoDB connection closed")
	return nil
}
