package services

import (
	"context"
	"errors"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/app/repositories"
	"github.com/uninits/backend/internal/pkg/apperrors"
)

type attendanceService struct {
	attendance AttendanceStore
}

// NewAttendanceService creates the attendance reconciler.
func NewAttendanceService(attendance AttendanceStore) AttendanceService {
	return &attendanceService{attendance: attendance}
}

// Get returns the student's attendance record, or an empty skeleton when
// none has been created yet. Absence is not an error.
func (s *attendanceService) Get(ctx context.Context, scholarID string) (*models.AttendanceRecord, error) {
	record, err := s.attendance.FindByScholarID(ctx, scholarID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.AttendanceRecord{
				ScholarID: scholarID,
				Subjects:  []models.SubjectAttendance{},
			}, nil
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return record, nil
}

// Update lazily creates the record on first write, then appends a new
// subject entry or overwrites the counters of an existing one. The updated
// record is returned. Repeated identical calls converge to the same single
// entry; concurrent differing calls race and the later write wins.
func (s *attendanceService) Update(ctx context.Context, scholarID, subjectCode string, total, attended int) (*models.AttendanceRecord, error) {
	if scholarID == "" || subjectCode == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrMissingFields, "Missing required fields")
	}
	if total < 0 || attended < 0 {
		return nil, apperrors.NewValidationError("Counters cannot be negative")
	}

	record, err := s.attendance.FindByScholarID(ctx, scholarID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewPersistenceError(err)
		}
		record = &models.AttendanceRecord{
			ScholarID: scholarID,
			Subjects:  []models.SubjectAttendance{},
		}
	}

	record.Upsert(subjectCode, total, attended)

	if err := s.attendance.Save(ctx, record); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return record, nil
}
