package dto

import "github.com/uninits/backend/internal/app/models"

// HealthResponse is the root health-check payload.
type HealthResponse struct {
	Status  string `json:"status" example:"Backend running"`
	Message string `json:"message" example:"uniNITS Backend API"`
}

// LoginRequest carries the scholar ID, which clients send as either a JSON
// string or a JSON number.
type LoginRequest struct {
	ScholarID interface{} `json:"scholarId" binding:"required"`
}

// RegisterRequest carries the fields that turn a pre-seeded account into a
// registered one.
type RegisterRequest struct {
	ScholarID interface{} `json:"scholarId" binding:"required"`
	Email     string      `json:"email" binding:"required"`
	UserName  string      `json:"userName" binding:"required"`
}

// AttendanceUpdateRequest upserts one subject's counters.
type AttendanceUpdateRequest struct {
	ScholarID   interface{} `json:"scholarId" binding:"required"`
	SubjectCode string      `json:"subjectCode" binding:"required"`
	Total       int         `json:"total" binding:"min=0"`
	Attended    int         `json:"attended" binding:"min=0"`
}

// StudentPayload is the student document as the frontend expects it:
// profileImage falls back to the default sentinel and absent GPA values
// render as 0.
type StudentPayload struct {
	ScholarID    interface{} `json:"scholarId"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	UserName     string      `json:"userName"`
	ProfileImage string      `json:"profileImage"`
	CGPA         float64     `json:"cgpa"`
	SGPACurr     float64     `json:"sgpa_curr"`
	SGPAPrev     float64     `json:"sgpa_prev"`
}

// NewStudentPayload maps a stored student onto the wire shape.
func NewStudentPayload(s *models.Student) StudentPayload {
	p := StudentPayload{
		ScholarID:    s.ScholarID,
		Name:         s.DisplayName(),
		Email:        s.Email,
		UserName:     s.UserName,
		ProfileImage: s.ProfileImage,
	}
	if p.ProfileImage == "" {
		p.ProfileImage = models.DefaultProfileImage
	}
	if s.CGPA != nil {
		p.CGPA = *s.CGPA
	}
	if s.SGPACurr != nil {
		p.SGPACurr = *s.SGPACurr
	}
	if s.SGPAPrev != nil {
		p.SGPAPrev = *s.SGPAPrev
	}
	return p
}

// CheckRegistrationResponse reports whether a scholar ID belongs to a fully
// registered account.
type CheckRegistrationResponse struct {
	IsRegistered bool   `json:"isRegistered"`
	Message      string `json:"message"`
	HasEmail     bool   `json:"hasEmail"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success   bool           `json:"success"`
	Student   StudentPayload `json:"student"`
	Token     string         `json:"token,omitempty"`
	ExpiresIn int            `json:"expiresIn,omitempty"`
}

// RegisterResponse is returned after register-or-update.
type RegisterResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Student StudentPayload `json:"student"`
}

// ProfileResponse bundles the student with the identity metadata derived
// from the scholar ID. Semester and branch are null when the ID encodes a
// batch or branch the lookup tables do not cover.
type ProfileResponse struct {
	Student     StudentPayload `json:"student"`
	Semester    *int           `json:"semester"`
	BranchShort *string        `json:"branchShort"`
}

// CoursesResponse returns the current-semester course list alongside the
// whole curriculum for the branch.
type CoursesResponse struct {
	CurrentSemesterCourses []models.Course        `json:"currentSemesterCourses"`
	AllCourses             []models.CourseCatalog `json:"allCourses"`
}

// UploadPhotoResponse reports the stored filename and its public URL.
type UploadPhotoResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// RepairProfileImagesResponse reports how many poisoned profile-image
// filenames the maintenance sweep reset.
type RepairProfileImagesResponse struct {
	Success  bool  `json:"success"`
	Repaired int64 `json:"repaired"`
}

// SuccessResponse represents a bare success acknowledgement
type SuccessResponse struct {
	Success bool `json:"success"`
}
