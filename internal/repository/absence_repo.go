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

// absenceRepo is the concrete implementation of AbsenceRepository
type absenceRepo struct {
	collection *mongo.Collection
}

// NewAbsenceRepo creates a new absence repository
func NewAbsenceRepo(db *database.DB) AbsenceRepository {
	return &absenceRepo{collection: db.Collection(CollectionAbsences)}
}

// List retrieves absences, restricted to those overlapping the inclusive
// window when both bounds are given. Overlap: start_date <= window end AND
// end_date >= window start.
func (r *absenceRepo) List(ctx context.Context, startDate, endDate string) ([]*models.Absence, error) {
	filter := bson.M{}
	if startDate != "" && endDate != "" {
		filter["start_date"] = bson.M{"$lte": endDate}
		filter["end_date"] = bson.M{"$gte": startDate}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeAbsences(ctx, cursor)
}

// GetByID retrieves an absence by ID
func (r *absenceRepo) GetByID(ctx context.Context, id string) (*models.Absence, error) {
	var absence models.Absence
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&absence)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// Create assigns a fresh id and creation timestamp, then persists
func (r *absenceRepo) Create(ctx context.Context, absence *models.Absence) error {
	absence.ID = uuid.New().String()
	absence.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, absence)
	return err
}

// Update applies a sparse patch and returns the full updated record
func (r *absenceRepo) Update(ctx context.Context, id string, update *models.AbsenceUpdate) (*models.Absence, error) {
	set := bson.M{}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.StartDate != nil {
		set["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		set["end_date"] = *update.EndDate
	}
	if update.EmployeeID != nil {
		set["employee_id"] = *update.EmployeeID
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var absence models.Absence
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&absence)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// Delete permanently removes an absence
func (r *absenceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of absences
func (r *absenceRepo) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(count), err
}

// DeleteAll removes every absence document
func (r *absenceRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// InsertMany inserts absence documents as-is, preserving ids and timestamps
func (r *absenceRepo) InsertMany(ctx context.Context, absences []*models.Absence) error {
	if len(absences) == 0 {
		return nil
	}
	docs := make([]interface{}, len(absences))
	for i, absence := range absences {
		docs[i] = absence
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func decodeAbsences(ctx context.Context, cursor *mongo.Cursor) ([]*models.Absence, error) {
	defer cursor.Close(ctx)

	var absences []*models.Absence
	for cursor.Next(ctx) {
		var absence models.Absence
		if err := cursor.Decode(&absence); err != nil {
			return nil, err
		}
		absences = append(absences, &absence)
	}
	return absences, cursor.Err()
}
