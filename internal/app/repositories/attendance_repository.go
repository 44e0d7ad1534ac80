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

// AttendanceRepository handles attendance document operations
type AttendanceRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *mongo.Database, timeout time.Duration) *AttendanceRepository {
	return &AttendanceRepository{
		collection: db.Collection("attendance"),
		timeout:    timeout,
	}
}

// FindByScholarID returns the single attendance record for a student, or
// ErrNotFound when none has been created yet.
func (r *AttendanceRepository) FindByScholarID(ctx context.Context, scholarID string) (*models.AttendanceRecord, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	// Attendance documents are created by this service only, so the key
	// is always the canonical string; the dual-representation lookup is a
	// student-collection concern.
	var record models.AttendanceRecord
	err := r.collection.FindOne(ctx, bson.M{"scholarId": scholarID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("scholarId", scholarID).Msg("Error finding attendance record")
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return &record, nil
}

// Save persists a record, inserting on first write and replacing in place
// afterwards. There is no version check: concurrent saves for the same
// student race and the later write wins.
func (r *AttendanceRepository) Save(ctx context.Context, record *models.AttendanceRecord) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	if record.ID.IsZero() {
		res, err := r.collection.InsertOne(ctx, record)
		if err != nil {
			logger.Error().Err(err).Str("scholarId", record.ScholarID).Msg("Error creating attendance record")
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			record.ID = oid
		}
		return nil
	}

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		logger.Error().Err(err).Str("scholarId", record.ScholarID).Msg("Error updating attendance record")
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	return nil
}
