package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uninits/backend/internal/app/models/dto"
	"github.com/uninits/backend/internal/app/services"
	"github.com/uninits/backend/internal/middleware"
	"github.com/uninits/backend/internal/pkg/scholarid"
)

// AttendanceController serves per-subject attendance counters
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// GetAttendance returns the attendance record for a scholar ID
// @Summary Fetch attendance
// @Description Returns the stored attendance record, or an empty skeleton when the student has never reported attendance
// @Tags attendance
// @Produce json
// @Param scholarId path string true "Scholar ID"
// @Success 200 {object} models.AttendanceRecord "Attendance record, possibly empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{scholarId} [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	scholarID := scholarid.Normalize(ctx.Param("scholarId"))

	record, err := c.attendanceService.Get(ctx, scholarID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// UpdateAttendance overwrites one subject's counters
// @Summary Update attendance for a subject
// @Description Overwrites the total and attended counters for one subject, creating the attendance record on first use. Replaying the same payload leaves the record unchanged.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.AttendanceUpdateRequest true "Subject counters"
// @Success 200 {object} models.AttendanceRecord "Updated attendance record"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or negative counters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/update [post]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	var req dto.AttendanceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.attendanceService.Update(ctx, scholarid.Normalize(req.ScholarID), req.SubjectCode, req.Total, req.Attended)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}
