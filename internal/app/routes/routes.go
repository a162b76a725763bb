package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maithili/projectvault/internal/app/controllers"
	"github.com/maithili/projectvault/internal/middleware"
	"github.com/maithili/projectvault/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	projectController *controllers.ProjectController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Student auth routes ---
	api.POST("/login", authController.Login)
	api.POST("/forgot-password", authController.ForgotPassword)
	api.POST("/reset-password", authController.ResetPassword)

	// --- Faculty routes ---
	faculty := api.Group("/faculty")
	{
		faculty.POST("/login", facultyController.Login)
		// Per-student view access is read by the student frontend
		faculty.GET("/student-view-access/:rollNo", facultyController.StudentViewAccess)

		facultyProtected := faculty.Group("")
		facultyProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleFaculty))
		{
			facultyProtected.GET("/department-access", facultyController.DepartmentAccess)
			facultyProtected.PUT("/department-access/:department", facultyController.ToggleDepartmentAccess)
		}
	}

	// --- Project catalog routes ---
	projects := api.Group("/projects")
	{
		projects.GET("", projectController.List)
		projects.POST("", projectController.Upload)
		projects.POST("/bulk-upload", projectController.BulkUpload)
		projects.GET("/student-status/:rollNo", projectController.StudentStatus)
		projects.GET("/download/*filename", projectController.Download)
	}

	// --- Account provisioning routes ---
	admin := api.Group("/admin")
	{
		admin.POST("/upload-students", adminController.UploadStudents)
		admin.POST("/upload-faculty", adminController.UploadFaculty)
	}
}
