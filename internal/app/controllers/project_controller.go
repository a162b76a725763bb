package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/app/services"
	"github.com/maithili/projectvault/internal/middleware"
	"github.com/maithili/projectvault/internal/pkg/filestorage"
)

// ProjectController handles the project catalog endpoints
type ProjectController struct {
	projectService *services.ProjectService
	importService  *services.ImportService
	storage        filestorage.ReportStorage
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(
	projectService *services.ProjectService,
	importService *services.ImportService,
	storage filestorage.ReportStorage,
	logger zerolog.Logger,
) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		importService:  importService,
		storage:        storage,
		logger:         logger,
	}
}

// List returns catalog entries matching the query parameters
func (c *ProjectController) List(ctx *gin.Context) {
	var filter dto.ProjectFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid query parameters"})
		return
	}

	projects, err := c.projectService.List(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error().Err(err).Msg("Project listing failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// Upload handles a single multipart project submission
func (c *ProjectController) Upload(ctx *gin.Context) {
	var req dto.ProjectUploadRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid project upload payload")
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: middleware.FormatValidationError(err)})
		return
	}

	report, err := ctx.FormFile("reportFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Report file is required"})
		return
	}

	project, err := c.projectService.Upload(ctx.Request.Context(), &req, report)
	if err != nil {
		c.logger.Warn().Err(err).Str("roll", req.RollNo).Msg("Project upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Project uploaded successfully",
		"project": project,
	})
}

// BulkUpload imports project records from an uploaded workbook
func (c *ProjectController) BulkUpload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Workbook file is required"})
		return
	}

	reader, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Failed to read workbook file"})
		return
	}
	defer reader.Close()

	summary, err := c.importService.ImportProjects(ctx.Request.Context(), reader)
	if err != nil {
		c.logger.Error().Err(err).Msg("Project import failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewImportResponse("Project import", summary))
}

// StudentStatus reports which project types a student has submitted
func (c *ProjectController) StudentStatus(ctx *gin.Context) {
	roll := ctx.Param("rollNo")

	status, err := c.projectService.StudentStatus(ctx.Request.Context(), roll)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// Download serves a stored report file. Imported records hold external
// links instead of stored filenames; those redirect.
func (c *ProjectController) Download(ctx *gin.Context) {
	filename := strings.TrimPrefix(ctx.Param("filename"), "/")

	if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
		ctx.Redirect(http.StatusFound, filename)
		return
	}

	path, ok := c.storage.Path(filename)
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Report file not found"})
		return
	}

	ctx.FileAttachment(path, filename)
}
