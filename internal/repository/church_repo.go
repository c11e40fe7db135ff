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

// churchRepo is the concrete implementation of ChurchRepository
type churchRepo struct {
	collection *mongo.Collection
}

// NewChurchRepo creates a new church repository
func NewChurchRepo(db *database.DB) ChurchRepository {
	return &churchRepo{collection: db.Collection(CollectionChurches)}
}

// ListActive retrieves all active churches (order unspecified)
func (r *churchRepo) ListActive(ctx context.Context) ([]*models.Church, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	return decodeChurches(ctx, cursor)
}

// ListAll retrieves every church, including soft-deleted ones
func (r *churchRepo) ListAll(ctx context.Context) ([]*models.Church, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeChurches(ctx, cursor)
}

// GetByID retrieves a church by ID
func (r *churchRepo) GetByID(ctx context.Context, id string) (*models.Church, error) {
	var church models.Church
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&church)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &church, nil
}

// Create assigns a fresh id and creation timestamp, then persists
func (r *churchRepo) Create(ctx context.Context, church *models.Church) error {
	church.ID = uuid.New().String()
	church.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, church)
	return err
}

// Update applies a sparse patch and returns the full updated record
func (r *churchRepo) Update(ctx context.Context, id string, update *models.ChurchUpdate) (*models.Church, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var church models.Church
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&church)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &church, nil
}

// Deactivate soft-deletes a church by flipping active to false
func (r *churchRepo) Deactivate(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of churches
func (r *churchRepo) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(count), err
}

// DeleteAll removes every church document
func (r *churchRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// InsertMany inserts church documents as-is, preserving ids and timestamps
func (r *churchRepo) InsertMany(ctx context.Context, churches []*models.Church) error {
	if len(churches) == 0 {
		return nil
	}
	docs := make([]interface{}, len(churches))
	for i, church := range churches {
		docs[i] = church
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func decodeChurches(ctx context.Context, cursor *mongo.Cursor) ([]*models.Church, error) {
	defer cursor.Close(ctx)

	var churches []*models.Church
	for cursor.Next(ctx) {
		var church models.Church
		if err := cursor.Decode(&church); err != nil {
			return nil, err
		}
		churches = append(churches, &church)
	}
	return churches, cursor.Err()
}
