// Package services implements the reconciliation policy between the HTTP
// layer and the document store: every operation re-reads the canonical
// document for its key, mutates it, and writes it back. There is no
// transactional wrapping and no version check; concurrent writers for the
// same key race and the later write wins.
package services

import (
	"context"
	"mime/multipart"

	"github.com/uninits/backend/internal/app/models"
)

// StudentStore is the contract the student reconciler needs from the
// document store. Satisfied by repositories.StudentRepository.
type StudentStore interface {
	FindByScholarID(ctx context.Context, scholarID string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	RepairProfileImages(ctx context.Context) (int64, error)
}

// CourseStore is the read-side contract for the course catalog.
type CourseStore interface {
	FindByBranchAndSemester(ctx context.Context, branchCode, semester int) (*models.CourseCatalog, error)
	FindByBranch(ctx context.Context, branchCode int) ([]models.CourseCatalog, error)
}

// AttendanceStore is the contract for per-student attendance documents.
type AttendanceStore interface {
	FindByScholarID(ctx context.Context, scholarID string) (*models.AttendanceRecord, error)
	Save(ctx context.Context, record *models.AttendanceRecord) error
}

// StudentService exposes registration, login and profile reconciliation.
type StudentService interface {
	Register(ctx context.Context, scholarID, email, userName string) (*models.Student, error)
	FindStudent(ctx context.Context, scholarID string) (*models.Student, error)
	Login(ctx context.Context, scholarID string) (*models.Student, error)
	Profile(ctx context.Context, scholarID string) (*models.Student, error)
	UpdateProfilePhoto(ctx context.Context, scholarID string, file *multipart.FileHeader) (*models.Student, string, error)
	RepairProfileImages(ctx context.Context) (int64, error)
}

// CourseService resolves a scholar's catalog views.
type CourseService interface {
	ListCourses(ctx context.Context, scholarID string) ([]models.Course, []models.CourseCatalog, error)
}

// AttendanceService exposes the attendance counters.
type AttendanceService interface {
	Get(ctx context.Context, scholarID string) (*models.AttendanceRecord, error)
	Update(ctx context.Context, scholarID, subjectCode string, total, attended int) (*models.AttendanceRecord, error)
}
