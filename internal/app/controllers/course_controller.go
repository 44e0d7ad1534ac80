package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uninits/backend/internal/app/models/dto"
	"github.com/uninits/backend/internal/app/services"
	"github.com/uninits/backend/internal/middleware"
	"github.com/uninits/backend/internal/pkg/scholarid"
)

// CourseController serves the per-branch course catalog
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses lists the catalog for the student's branch
// @Summary List courses for a scholar ID
// @Description Returns the current semester's courses alongside the full catalog for the branch encoded in the scholar ID. An undecodable ID yields empty lists, not an error.
// @Tags courses
// @Produce json
// @Param scholarId path string true "Scholar ID"
// @Success 200 {object} dto.CoursesResponse "Current semester and full catalog"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{scholarId} [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	scholarID := scholarid.Normalize(ctx.Param("scholarId"))

	current, all, err := c.courseService.ListCourses(ctx, scholarID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CoursesResponse{
		CurrentSemesterCourses: current,
		AllCourses:             all,
	})
}
