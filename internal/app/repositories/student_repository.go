package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/pkg/logger"
)

// StudentRepository handles student document operations
type StudentRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database, timeout time.Duration) *StudentRepository {
	return &StudentRepository{
		collection: db.Collection("students"),
		timeout:    timeout,
	}
}

// FindByScholarID returns the single student matching either representation
// of the scholar ID, or ErrNotFound.
func (r *StudentRepository) FindByScholarID(ctx context.Context, scholarID string) (*models.Student, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var student models.Student
	err := r.collection.FindOne(ctx, scholarKeyFilter(scholarID)).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("scholarId", scholarID).Msg("Error finding student")
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

// Create inserts a new student document and records its generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating student")
		return fmt.Errorf("failed to create student: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// Update replaces the stored document for an already-loaded student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		return fmt.Errorf("cannot update student without an ID")
	}
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": student.ID}, student)
	if err != nil {
		logger.Error().Err(err).Str("scholarId", student.ScholarIDString()).Msg("Error updating student")
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

// RepairProfileImages resets every profileImage that is literally
// "undefined" or carries the "undefined-" prefix (the artifact of an upload
// that arrived without a scholar ID) back to the default sentinel. Returns
// the number of repaired documents.
func (r *StudentRepository) RepairProfileImages(ctx context.Context) (int64, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"profileImage": "undefined"},
		bson.M{"profileImage": bson.M{"$regex": primitive.Regex{Pattern: "^undefined-"}}},
	}}
	update := bson.M{"$set": bson.M{"profileImage": models.DefaultProfileImage}}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		logger.Error().Err(err).Msg("Error repairing profile images")
		return 0, fmt.Errorf("failed to repair profile images: %w", err)
	}
	return res.ModifiedCount, nil
}
