package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/access"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/app/services"
	"github.com/maithili/projectvault/internal/middleware"
)

// FacultyController handles faculty sessions and the department
// access gate.
type FacultyController struct {
	authService *services.AuthService
	gate        *access.Gate
	logger      zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(authService *services.AuthService, gate *access.Gate, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		authService: authService,
		gate:        gate,
		logger:      logger,
	}
}

// Login handles faculty login
func (c *FacultyController) Login(ctx *gin.Context) {
	var req dto.FacultyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email and password are required"})
		return
	}

	resp, err := c.authService.FacultyLogin(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Faculty login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DepartmentAccess returns the current flag for every department
func (c *FacultyController) DepartmentAccess(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.gate.All())
}

// ToggleDepartmentAccess flips the flag for one department
func (c *FacultyController) ToggleDepartmentAccess(ctx *gin.Context) {
	department := ctx.Param("department")

	granted, message, err := c.gate.Toggle(department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("department", department).Bool("granted", granted).Msg("Department access toggled")
	ctx.JSON(http.StatusOK, dto.DepartmentToggleResponse{
		Department:    department,
		AccessGranted: granted,
		Message:       message,
	})
}

// StudentViewAccess reports whether a student's department currently
// permits content access. Unknown programme codes read as no access.
func (c *FacultyController) StudentViewAccess(ctx *gin.Context) {
	roll := ctx.Param("rollNo")

	granted, branch := c.gate.StudentViewAccess(roll)
	ctx.JSON(http.StatusOK, dto.StudentViewAccessResponse{
		HasViewAccess: granted,
		Branch:        branch,
	})
}
