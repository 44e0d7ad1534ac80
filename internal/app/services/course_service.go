package services

import (
	"context"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/pkg/apperrors"
	"github.com/uninits/backend/internal/pkg/scholarid"
)

type courseService struct {
	courses CourseStore
}

// NewCourseService creates the catalog reader.
func NewCourseService(courses CourseStore) CourseService {
	return &courseService{courses: courses}
}

// ListCourses derives the branch and current semester from the scholar ID
// and returns the current-semester course list next to the branch's whole
// curriculum, ascending by semester. Unknown branch or semester codes
// resolve to empty lists, not errors.
func (s *courseService) ListCourses(ctx context.Context, scholarID string) ([]models.Course, []models.CourseCatalog, error) {
	branchCode, ok := scholarid.BranchCode(scholarID)
	if !ok {
		return []models.Course{}, []models.CourseCatalog{}, nil
	}

	current := []models.Course{}
	if semester, ok := scholarid.CurrentSemester(scholarID); ok {
		catalog, err := s.courses.FindByBranchAndSemester(ctx, branchCode, semester)
		if err != nil {
			return nil, nil, apperrors.NewPersistenceError(err)
		}
		if catalog != nil {
			current = catalog.Courses
		}
	}

	all, err := s.courses.FindByBranch(ctx, branchCode)
	if err != nil {
		return nil, nil, apperrors.NewPersistenceError(err)
	}

	return current, all, nil
}
