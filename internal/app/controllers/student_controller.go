package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uninits/backend/internal/app/models/dto"
	"github.com/uninits/backend/internal/app/services"
	"github.com/uninits/backend/internal/middleware"
	"github.com/uninits/backend/internal/pkg/apperrors"
	"github.com/uninits/backend/internal/pkg/auth"
	"github.com/uninits/backend/internal/pkg/filestorage"
	"github.com/uninits/backend/internal/pkg/logger"
	"github.com/uninits/backend/internal/pkg/scholarid"
)

// maxUploadSize caps profile image uploads at 5 MiB.
const maxUploadSize = 5 << 20

// StudentController handles registration, login, profile and photo routes
type StudentController struct {
	studentService services.StudentService
	jwtService     *auth.JWTService
	files          filestorage.Storage
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, jwtService *auth.JWTService, files filestorage.Storage) *StudentController {
	return &StudentController{
		studentService: studentService,
		jwtService:     jwtService,
		files:          files,
	}
}

// CheckRegistration reports whether a scholar ID is fully registered
// @Summary Check registration state
// @Description Reports whether the scholar ID belongs to a fully registered account (one with an email on record)
// @Tags students
// @Produce json
// @Param scholarId path string true "Scholar ID"
// @Success 200 {object} dto.CheckRegistrationResponse "Registration state"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /check-registration/{scholarId} [get]
func (c *StudentController) CheckRegistration(ctx *gin.Context) {
	scholarID := scholarid.Normalize(ctx.Param("scholarId"))
	logger.Debug().Str("scholarId", scholarID).Msg("Checking registration")

	student, err := c.studentService.FindStudent(ctx, scholarID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			ctx.JSON(http.StatusOK, dto.CheckRegistrationResponse{
				IsRegistered: false,
				Message:      "Student not found in database",
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "User found but not fully registered"
	if student.Registered() {
		message = "User is registered"
	}
	ctx.JSON(http.StatusOK, dto.CheckRegistrationResponse{
		IsRegistered: student.Registered(),
		Message:      message,
		HasEmail:     student.Registered(),
	})
}

// Login resolves a scholar ID to a registered student
// @Summary Log a student in
// @Description Resolves the scholar ID to a registered student and issues a session token. Fails distinctly for unknown students and for accounts that never completed registration.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Scholar ID (string or number)"
// @Success 200 {object} dto.LoginResponse "Student payload with session token"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Registration incomplete"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	scholarID := scholarid.Normalize(req.ScholarID)
	student, err := c.studentService.Login(ctx, scholarID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.LoginResponse{
		Success: true,
		Student: dto.NewStudentPayload(student),
	}
	if token, expiresIn, err := c.jwtService.GenerateToken(student.ScholarIDString()); err != nil {
		// Login still succeeds without a token; the protected admin
		// surface is simply unavailable to this session.
		logger.Error().Err(err).Str("scholarId", scholarID).Msg("Failed to issue session token")
	} else {
		resp.Token = token
		resp.ExpiresIn = expiresIn
	}

	ctx.JSON(http.StatusOK, resp)
}

// Register turns a pre-seeded account into a registered one
// @Summary Register a student
// @Description Creates the student on first registration or completes a pre-seeded account. Safe to call twice with identical input.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 200 {object} dto.RegisterResponse "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or invalid institute email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	scholarID := scholarid.Normalize(req.ScholarID)
	student, err := c.studentService.Register(ctx, scholarID, strings.TrimSpace(req.Email), strings.TrimSpace(req.UserName))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterResponse{
		Success: true,
		Message: "Registration successful",
		Student: dto.NewStudentPayload(student),
	})
}

// Profile returns the student with identity metadata derived from the ID
// @Summary Fetch a student profile
// @Description Returns the student document together with the semester and branch derived from the scholar ID. A poisoned profile image filename is healed before it is served.
// @Tags students
// @Produce json
// @Param scholarId path string true "Scholar ID"
// @Success 200 {object} dto.ProfileResponse "Profile with derived identity metadata"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/{scholarId} [get]
func (c *StudentController) Profile(ctx *gin.Context) {
	scholarID := scholarid.Normalize(ctx.Param("scholarId"))

	student, err := c.studentService.Profile(ctx, scholarID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ProfileResponse{Student: dto.NewStudentPayload(student)}
	if semester, ok := scholarid.CurrentSemester(scholarID); ok {
		resp.Semester = &semester
	}
	if branch, ok := scholarid.BranchShort(scholarID); ok {
		resp.BranchShort = &branch
	}

	ctx.JSON(http.StatusOK, resp)
}

// UploadPhoto replaces the student's profile image
// @Summary Upload a profile photo
// @Description Stores the uploaded image under a deterministic name, deletes the previous non-default image, and records the filename on the student
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param scholarId formData string true "Scholar ID"
// @Param profileImage formData file true "Image file (max 5 MiB)"
// @Success 200 {object} dto.UploadPhotoResponse "Stored filename and public URL"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, wrong type or oversized file"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/upload-photo [post]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	scholarID := scholarid.Normalize(ctx.PostForm("scholarId"))

	file, err := ctx.FormFile("profileImage")
	if err != nil || scholarID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMissingFields, "Scholar ID and image file are required")))
		return
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Not an image").WithField("profileImage")))
		return
	}
	if file.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image exceeds the 5 MiB limit").WithField("profileImage")))
		return
	}

	_, filename, err := c.studentService.UpdateProfilePhoto(ctx, scholarID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadPhotoResponse{
		Success:  true,
		Filename: filename,
		URL:      c.files.PublicURL(filename),
	})
}

// RepairProfileImages runs the maintenance sweep for poisoned filenames
// @Summary Repair poisoned profile images
// @Description Resets every profile image filename that was recorded as "undefined" back to the default sentinel
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.RepairProfileImagesResponse "Number of repaired documents"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/repair-profile-images [post]
func (c *StudentController) RepairProfileImages(ctx *gin.Context) {
	repaired, err := c.studentService.RepairProfileImages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RepairProfileImagesResponse{
		Success:  true,
		Repaired: repaired,
	})
}
