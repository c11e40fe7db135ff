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

// employeeRepo is the concrete implementation of EmployeeRepository
type employeeRepo struct {
	collection *mongo.Collection
}

// NewEmployeeRepo creates a new employee repository
func NewEmployeeRepo(db *database.DB) EmployeeRepository {
	return &employeeRepo{collection: db.Collection(CollectionEmployees)}
}

// ListActive retrieves all active employees sorted by position ascending
func (r *employeeRepo) ListActive(ctx context.Context) ([]*models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	return decodeEmployees(ctx, cursor)
}

// ListAll retrieves every employee, including soft-deleted ones
func (r *employeeRepo) ListAll(ctx context.Context) ([]*models.Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeEmployees(ctx, cursor)
}

// GetByID retrieves an employee by ID
func (r *employeeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create assigns a fresh id and creation timestamp, then persists
func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	employee.ID = uuid.New().String()
	employee.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, employee)
	return err
}

// Update applies a sparse patch and returns the full updated record
func (r *employeeRepo) Update(ctx context.Context, id string, update *models.EmployeeUpdate) (*models.Employee, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if len(set) == 0 {
		// Nothing to patch; an empty $set is rejected by the server
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Deactivate soft-deletes an employee by flipping active to false
func (r *employeeRepo) Deactivate(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of employees
func (r *employeeRepo) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(count), err
}

// DeleteAll removes every employee document
func (r *employeeRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// InsertMany inserts employee documents as-is, preserving ids and timestamps
func (r *employeeRepo) InsertMany(ctx context.Context, employees []*models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	docs := make([]interface{}, len(employees))
	for i, employee := range employees {
		docs[i] = employee
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func decodeEmployees(ctx context.Context, cursor *mongo.Cursor) ([]*models.Employee, error) {
	defer cursor.Close(ctx)

	var employees []*models.Employee
	for cursor.Next(ctx) {
		var employee models.Employee
		if err := cursor.Decode(&employee); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}
	return employees, cursor.Err()
}
