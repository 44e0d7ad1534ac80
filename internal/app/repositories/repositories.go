package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is the shared "no matching document" error. It is distinct
// from a store fault: callers translate it, never retry it.
var ErrNotFound = errors.New("document not found")

// Repositories holds all repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories creates all repositories on a shared database handle.
// Every store call is bounded by opTimeout.
func NewRepositories(db *mongo.Database, opTimeout time.Duration) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db, opTimeout),
		CourseRepository:     NewCourseRepository(db, opTimeout),
		AttendanceRepository: NewAttendanceRepository(db, opTimeout),
	}
}

// opContext bounds a store call with the configured operation timeout. A
// zero timeout leaves the caller's context untouched.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// scholarKeyFilter matches a document whose scholarId was persisted as
// either the string or the numeric form of the identifier. Legacy seeds
// wrote numbers, registration writes strings, and both must keep resolving
// to the same logical record. If the store were to hold two documents
// differing only by representation, which one wins is undefined; fixing
// that requires an explicit data migration, not a query change.
func scholarKeyFilter(scholarID string) bson.M {
	or := bson.A{bson.M{"scholarId": scholarID}}
	if n, err := strconv.ParseInt(scholarID, 10, 64); err == nil {
		or = append(or, bson.M{"scholarId": n})
	}
	return bson.M{"$or": or}
}
