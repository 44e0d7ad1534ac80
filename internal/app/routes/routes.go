package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uninits/backend/internal/app/controllers"
	"github.com/uninits/backend/internal/app/models/dto"
	"github.com/uninits/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Health check endpoint (public)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "Backend running",
			Message: "uniNITS Backend API",
		})
	})

	api := router.Group("/api")

	// --- Public student routes ---
	{
		api.GET("/check-registration/:scholarId", studentController.CheckRegistration)
		api.POST("/login", studentController.Login)
		api.POST("/register", studentController.Register)
		api.GET("/profile/:scholarId", studentController.Profile)
		api.POST("/profile/upload-photo", studentController.UploadPhoto)
	}

	// --- Public catalog and attendance routes ---
	{
		api.GET("/courses/:scholarId", courseController.GetCourses)
		api.GET("/attendance/:scholarId", attendanceController.GetAttendance)
		api.POST("/attendance/update", attendanceController.UpdateAttendance)
	}

	// --- Protected admin routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.POST("/repair-profile-images", studentController.RepairProfileImages)
	}

	// Swagger routes are registered via SetupSwagger from bootstrap
}
