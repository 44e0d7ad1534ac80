package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uninits/backend/internal/app/controllers"
	"github.com/uninits/backend/internal/app/models"
	"github.com/uninits/backend/internal/app/routes"
	"github.com/uninits/backend/internal/middleware"
	"github.com/uninits/backend/internal/pkg/apperrors"
	"github.com/uninits/backend/internal/pkg/auth"
)

type stubStudentService struct {
	student  *models.Student
	err      error
	repaired int64

	lastScholarID string
	uploaded      string
}

func (s *stubStudentService) Register(_ context.Context, scholarID, email, userName string) (*models.Student, error) {
	s.lastScholarID = scholarID
	if s.err != nil {
		return nil, s.err
	}
	return &models.Student{ScholarID: scholarID, Email: email, UserName: userName, ProfileImage: models.DefaultProfileImage}, nil
}

func (s *stubStudentService) FindStudent(_ context.Context, scholarID string) (*models.Student, error) {
	s.lastScholarID = scholarID
	return s.student, s.err
}

func (s *stubStudentService) Login(_ context.Context, scholarID string) (*models.Student, error) {
	s.lastScholarID = scholarID
	return s.student, s.err
}

func (s *stubStudentService) Profile(_ context.Context, scholarID string) (*models.Student, error) {
	s.lastScholarID = scholarID
	return s.student, s.err
}

func (s *stubStudentService) UpdateProfilePhoto(_ context.Context, scholarID string, file *multipart.FileHeader) (*models.Student, string, error) {
	s.lastScholarID = scholarID
	if s.err != nil {
		return nil, "", s.err
	}
	s.uploaded = scholarID + "-1700000000000.png"
	return s.student, s.uploaded, nil
}

func (s *stubStudentService) RepairProfileImages(_ context.Context) (int64, error) {
	return s.repaired, s.err
}

type stubCourseService struct {
	current []models.Course
	all     []models.CourseCatalog
	err     error
}

func (s *stubCourseService) ListCourses(_ context.Context, _ string) ([]models.Course, []models.CourseCatalog, error) {
	return s.current, s.all, s.err
}

type stubAttendanceService struct {
	record *models.AttendanceRecord
	err    error

	lastSubject  string
	lastCounters [2]int
}

func (s *stubAttendanceService) Get(_ context.Context, scholarID string) (*models.AttendanceRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.record == nil {
		return &models.AttendanceRecord{ScholarID: scholarID, Subjects: []models.SubjectAttendance{}}, nil
	}
	return s.record, nil
}

func (s *stubAttendanceService) Update(_ context.Context, scholarID, subjectCode string, total, attended int) (*models.AttendanceRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastSubject = subjectCode
	s.lastCounters = [2]int{total, attended}
	record := &models.AttendanceRecord{ScholarID: scholarID}
	record.Upsert(subjectCode, total, attended)
	return record, nil
}

type stubStorage struct{}

func (stubStorage) SaveProfileImage(_ *multipart.FileHeader, scholarID string) (string, error) {
	return scholarID + "-1700000000000.png", nil
}
func (stubStorage) DeleteProfileImage(string) error { return nil }
func (stubStorage) PublicURL(filename string) string {
	return "http://localhost:10000/uploads/" + filename
}

type testEnv struct {
	router     *gin.Engine
	students   *stubStudentService
	courses    *stubCourseService
	attendance *stubAttendanceService
	jwt        *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		students:   &stubStudentService{},
		courses:    &stubCourseService{},
		attendance: &stubAttendanceService{},
		jwt: auth.NewJWTService(auth.JWTConfig{
			SecretKey:   "test-secret",
			TokenExp:    time.Hour,
			TokenIssuer: "uninits.test",
		}),
	}

	env.router = gin.New()
	routes.SetupRouter(env.router,
		controllers.NewStudentController(env.students, env.jwt, stubStorage{}),
		controllers.NewCourseController(env.courses),
		controllers.NewAttendanceController(env.attendance),
		middleware.NewAuthMiddleware(env.jwt),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Backend running", body["status"])
}

func TestCheckRegistrationUnknownStudent(t *testing.T) {
	env := newTestEnv(t)
	env.students.err = apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found. Please register first.")

	w := env.do(t, http.MethodGet, "/api/check-registration/2415062", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, "unknown student is a state, not an error")

	body := decodeBody(t, w)
	assert.Equal(t, false, body["isRegistered"])
	assert.Equal(t, "Student not found in database", body["message"])
}

func TestCheckRegistrationRegisteredStudent(t *testing.T) {
	env := newTestEnv(t)
	env.students.student = &models.Student{ScholarID: "2415062", Email: "a@nits.ac.in"}

	w := env.do(t, http.MethodGet, "/api/check-registration/2415062", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["isRegistered"])
	assert.Equal(t, true, body["hasEmail"])
}

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	env.students.student = &models.Student{ScholarID: "2415062", Email: "a@nits.ac.in", UserName: "Aditi"}

	w := env.do(t, http.MethodPost, "/api/login", gin.H{"scholarId": "2415062"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	require.NotEmpty(t, body["token"])

	claims, err := env.jwt.ValidateToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "2415062", claims.ScholarID)
}

func TestLoginAcceptsNumericScholarID(t *testing.T) {
	env := newTestEnv(t)
	env.students.student = &models.Student{ScholarID: "2415062", Email: "a@nits.ac.in"}

	w := env.do(t, http.MethodPost, "/api/login", gin.H{"scholarId": 2415062}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2415062", env.students.lastScholarID, "numeric IDs normalize to their string form")
}

func TestLoginUnknownStudentIs404(t *testing.T) {
	env := newTestEnv(t)
	env.students.err = apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found. Please register first.")

	w := env.do(t, http.MethodPost, "/api/login", gin.H{"scholarId": "2415062"}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestLoginIncompleteRegistrationIs403(t *testing.T) {
	env := newTestEnv(t)
	env.students.err = apperrors.NewCustomError(apperrors.ErrIncompleteRegistration, "Registration incomplete. Please complete registration first.")

	w := env.do(t, http.MethodPost, "/api/login", gin.H{"scholarId": "2415062"}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		Error struct {
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Error.Details["requiresRegistration"])
}

func TestLoginMissingBodyIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/login", gin.H{}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterMissingFieldsIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", gin.H{"scholarId": "2415062"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.students.lastScholarID, "service must not be reached")
}

func TestRegisterSuccess(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", gin.H{
		"scholarId": 2415062,
		"email":     "a@nits.ac.in",
		"userName":  "Aditi",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registration successful", body["message"])
	assert.Equal(t, "2415062", env.students.lastScholarID)
}

func TestProfileDerivesSemesterAndBranch(t *testing.T) {
	env := newTestEnv(t)
	env.students.student = &models.Student{ScholarID: "2415062", Email: "a@nits.ac.in"}

	w := env.do(t, http.MethodGet, "/api/profile/2415062", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["semester"])
	assert.Equal(t, "EIE", body["branchShort"])
}

func TestProfileUnknownBatchYieldsNullDerivedFields(t *testing.T) {
	env := newTestEnv(t)
	env.students.student = &models.Student{ScholarID: "9915062", Email: "a@nits.ac.in"}

	w := env.do(t, http.MethodGet, "/api/profile/9915062", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Nil(t, body["semester"])
	assert.Equal(t, "EIE", body["branchShort"], "branch digit still decodes")
}

func TestProfileNotFoundIs404(t *testing.T) {
	env := newTestEnv(t)
	env.students.err = apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found")

	w := env.do(t, http.MethodGet, "/api/profile/2415062", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCourses(t *testing.T) {
	env := newTestEnv(t)
	env.courses.current = []models.Course{{Code: "EC-204", Name: "Signals", Credits: 3}}
	env.courses.all = []models.CourseCatalog{{BranchCode: 4, BranchShort: "ECE", Semester: 4}}

	w := env.do(t, http.MethodGet, "/api/courses/2445062", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CurrentSemesterCourses []models.Course        `json:"currentSemesterCourses"`
		AllCourses             []models.CourseCatalog `json:"allCourses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.CurrentSemesterCourses, 1)
	assert.Equal(t, "EC-204", resp.CurrentSemesterCourses[0].Code)
	require.Len(t, resp.AllCourses, 1)
}

func TestGetAttendanceEmptySkeleton(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/attendance/2415062", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "2415062", body["scholarId"])
	assert.NotNil(t, body["attendance"])
}

func TestUpdateAttendance(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/attendance/update", gin.H{
		"scholarId":   2415062,
		"subjectCode": "EC-204",
		"total":       30,
		"attended":    25,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "EC-204", env.attendance.lastSubject)
	assert.Equal(t, [2]int{30, 25}, env.attendance.lastCounters)
}

func TestUpdateAttendanceNegativeCountersIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/attendance/update", gin.H{
		"scholarId":   "2415062",
		"subjectCode": "EC-204",
		"total":       -1,
		"attended":    0,
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.attendance.lastSubject)
}

func TestUploadPhoto(t *testing.T) {
	env := newTestEnv(t)
	env.students.student = &models.Student{ScholarID: "2415062", Email: "a@nits.ac.in"}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("scholarId", "2415062"))
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="profileImage"; filename="me.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/upload-photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["filename"], "2415062-")
	assert.True(t, strings.HasPrefix(body["url"].(string), "http://localhost:10000/uploads/"))
}

func TestUploadPhotoRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("scholarId", "2415062"))
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="profileImage"; filename="notes.pdf"`},
		"Content-Type":        {"application/pdf"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/upload-photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadPhotoRequiresFile(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("scholarId", "2415062"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/upload-photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRepairProfileImagesRequiresToken(t *testing.T) {
	env := newTestEnv(t)
	env.students.repaired = 3

	w := env.do(t, http.MethodPost, "/api/admin/repair-profile-images", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := env.jwt.GenerateToken("2415062")
	require.NoError(t, err)

	w = env.do(t, http.MethodPost, "/api/admin/repair-profile-images", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["repaired"])
}

func TestRepairProfileImagesRejectsGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/admin/repair-profile-images", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
