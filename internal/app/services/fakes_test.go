package services

import (
	"context"
	"mime/multipart"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/app/repositories"
	"github.com/uninits/backend/internal/pkg/scholarid"
)

// fakeStudentStore is an in-memory StudentStore. Lookups match on the
// canonical string form of the stored key, mirroring the dual string/number
// filter the real repository issues.
type fakeStudentStore struct {
	students  []*models.Student
	findErr   error
	createErr error
	updateErr error
	creates   int
	updates   int
	repaired  int64
	repairErr error
}

func (f *fakeStudentStore) FindByScholarID(_ context.Context, scholarID string) (*models.Student, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, s := range f.students {
		if scholarid.Normalize(s.ScholarID) == scholarID {
			return s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = primitive.NewObjectID()
	f.students = append(f.students, student)
	f.creates++
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	return nil
}

func (f *fakeStudentStore) RepairProfileImages(_ context.Context) (int64, error) {
	if f.repairErr != nil {
		return 0, f.repairErr
	}
	for _, s := range f.students {
		if isPoisonedImage(s.ProfileImage) {
			s.ProfileImage = models.DefaultProfileImage
			f.repaired++
		}
	}
	return f.repaired, nil
}

type fakeCourseStore struct {
	catalogs []models.CourseCatalog
	err      error
}

func (f *fakeCourseStore) FindByBranchAndSemester(_ context.Context, branchCode, semester int) (*models.CourseCatalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.catalogs {
		if f.catalogs[i].BranchCode == branchCode && f.catalogs[i].Semester == semester {
			return &f.catalogs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) FindByBranch(_ context.Context, branchCode int) ([]models.CourseCatalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.CourseCatalog{}
	for _, c := range f.catalogs {
		if c.BranchCode == branchCode {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Semester < out[j].Semester })
	return out, nil
}

type fakeAttendanceStore struct {
	records map[string]*models.AttendanceRecord
	findErr error
	saveErr error
	saves   int
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: map[string]*models.AttendanceRecord{}}
}

func (f *fakeAttendanceStore) FindByScholarID(_ context.Context, scholarID string) (*models.AttendanceRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if r, ok := f.records[scholarID]; ok {
		return r, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAttendanceStore) Save(_ context.Context, record *models.AttendanceRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	f.records[record.ScholarID] = record
	f.saves++
	return nil
}

// fakeStorage records save/delete calls without touching the filesystem.
type fakeStorage struct {
	nextFilename string
	saveErr      error
	saved        []string
	deleted      []string
}

func (f *fakeStorage) SaveProfileImage(_ *multipart.FileHeader, scholarID string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, f.nextFilename)
	return f.nextFilename, nil
}

func (f *fakeStorage) DeleteProfileImage(filename string) error {
	f.deleted = append(f.deleted, filename)
	return nil
}

func (f *fakeStorage) PublicURL(filename string) string {
	return "http://localhost:10000/uploads/" + filename
}
