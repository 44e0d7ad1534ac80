package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/pkg/logger"
)

// CourseRepository handles course catalog reads. Catalogs are written only
// by the administrative seed.
type CourseRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *mongo.Database, timeout time.Duration) *CourseRepository {
	return &CourseRepository{
		collection: db.Collection("courses"),
		timeout:    timeout,
	}
}

// FindByBranchAndSemester returns the catalog entry for the pair, or nil
// when no catalog has been loaded for it.
func (r *CourseRepository) FindByBranchAndSemester(ctx context.Context, branchCode, semester int) (*models.CourseCatalog, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var catalog models.CourseCatalog
	filter := bson.M{"branchCode": branchCode, "semester": semester}
	err := r.collection.FindOne(ctx, filter).Decode(&catalog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Int("branchCode", branchCode).Int("semester", semester).Msg("Error finding course catalog")
		return nil, fmt.Errorf("failed to find course catalog: %w", err)
	}
	return &catalog, nil
}

// FindByBranch returns every catalog entry for a branch, ascending by
// semester.
func (r *CourseRepository) FindByBranch(ctx context.Context, branchCode int) ([]models.CourseCatalog, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "semester", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"branchCode": branchCode}, findOpts)
	if err != nil {
		logger.Error().Err(err).Int("branchCode", branchCode).Msg("Error querying course catalogs")
		return nil, fmt.Errorf("failed to query course catalogs: %w", err)
	}
	defer cursor.Close(ctx)

	catalogs := []models.CourseCatalog{}
	if err := cursor.All(ctx, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to decode course catalogs: %w", err)
	}
	return catalogs, nil
}

// Upsert writes a catalog entry keyed by (branchCode, semester). Used by
// the seed path; safe to re-run.
func (r *CourseRepository) Upsert(ctx context.Context, catalog *models.CourseCatalog) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"branchCode": catalog.BranchCode, "semester": catalog.Semester}
	update := bson.M{"$set": bson.M{
		"branchCode":  catalog.BranchCode,
		"branchShort": catalog.BranchShort,
		"semester":    catalog.Semester,
		"courses":     catalog.Courses,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		logger.Error().Err(err).Int("branchCode", catalog.BranchCode).Int("semester", catalog.Semester).Msg("Error upserting course catalog")
		return fmt.Errorf("failed to upsert course catalog: %w", err)
	}
	return nil
}
