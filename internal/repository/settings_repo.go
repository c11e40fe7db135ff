package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kirkespor-api/internal/database"
	"github.com/kirkespor-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsRepo is the concrete implementation of SettingsRepository. The
// settings collection holds at most one document.
type settingsRepo struct {
	collection *mongo.Collection
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *database.DB) SettingsRepository {
	return &settingsRepo{collection: db.Collection(CollectionSettings)}
}

// Get returns the singleton settings document, or the default shape if none
// has ever been written
func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Replace upserts the singleton, stamping the update time. The stored _id is
// immutable, so an existing document keeps its id across replacements.
func (r *settingsRepo) Replace(ctx context.Context, settings *models.Settings) error {
	var existing models.Settings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&existing)
	switch {
	case err == nil:
		settings.ID = existing.ID
	case errors.Is(err, mongo.ErrNoDocuments):
		if settings.ID == "" {
			settings.ID = uuid.New().String()
		}
	default:
		return err
	}
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	opts := options.Replace().SetUpsert(true)
	_, err = r.collection.ReplaceOne(ctx, bson.M{}, settings, opts)
	return err
}

// Insert stores a settings document as-is, preserving its id and update
// time. Used by the backup restore path after the collection was cleared.
func (r *settingsRepo) Insert(ctx context.Context, settings *models.Settings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	_, err := r.collection.InsertOne(ctx, settings)
	return err
}

// DeleteAll removes the settings document
func (r *settingsRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
