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

// serviceRepo is the concrete implementation of ServiceRepository
type serviceRepo struct {
	collection *mongo.Collection
}

// NewServiceRepo creates a new service repository
func NewServiceRepo(db *database.DB) ServiceRepository {
	return &serviceRepo{collection: db.Collection(CollectionServices)}
}

// List retrieves services, restricted to the inclusive date window when both
// bounds are given. Lexical comparison on the fixed-width date strings equals
// chronological comparison.
func (r *serviceRepo) List(ctx context.Context, startDate, endDate string) ([]*models.Service, error) {
	filter := bson.M{}
	if startDate != "" && endDate != "" {
		filter["date"] = bson.M{"$gte": startDate, "$lte": endDate}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeServices(ctx, cursor)
}

// GetByID retrieves a service by ID
func (r *serviceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Create assigns a fresh id and creation timestamp, then persists
func (r *serviceRepo) Create(ctx context.Context, service *models.Service) error {
	service.ID = uuid.New().String()
	service.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, service)
	return err
}

// Update applies a sparse patch and returns the full updated record
func (r *serviceRepo) Update(ctx context.Context, id string, update *models.ServiceUpdate) (*models.Service, error) {
	set := bson.M{}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Time != nil {
		set["time"] = *update.Time
	}
	if update.EmployeeID != nil {
		set["employee_id"] = *update.EmployeeID
	}
	if update.ChurchID != nil {
		set["church_id"] = *update.ChurchID
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var service models.Service
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Delete permanently removes a service
func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of services
func (r *serviceRepo) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(count), err
}

// DeleteAll removes every service document
func (r *serviceRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// InsertMany inserts service documents as-is, preserving ids and timestamps
func (r *serviceRepo) InsertMany(ctx context.Context, services []*models.Service) error {
	if len(services) == 0 {
		return nil
	}
	docs := make([]interface{}, len(services))
	for i, service := range services {
		docs[i] = service
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func decodeServices(ctx context.Context, cursor *mongo.Cursor) ([]*models.Service, error) {
	defer cursor.Close(ctx)

	var services []*models.Service
	for cursor.Next(ctx) {
		var service models.Service
		if err := cursor.Decode(&service); err != nil {
			return nil, err
		}
		services = append(services, &service)
	}
	return services, cursor.Err()
}
