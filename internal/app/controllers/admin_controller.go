package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/app/services"
	"github.com/maithili/projectvault/internal/middleware"
)

// AdminController handles the account provisioning imports
type AdminController struct {
	importService *services.ImportService
	logger        zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(importService *services.ImportService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		importService: importService,
		logger:        logger,
	}
}

// UploadStudents provisions student accounts from an uploaded workbook
func (c *AdminController) UploadStudents(ctx *gin.Context) {
	c.runImport(ctx, "Student import", c.importService.ImportStudents)
}

// UploadFaculty provisions faculty accounts from an uploaded workbook
func (c *AdminController) UploadFaculty(ctx *gin.Context) {
	c.runImport(ctx, "Faculty import", c.importService.ImportFaculty)
}

func (c *AdminController) runImport(ctx *gin.Context, what string, run func(context.Context, io.Reader) (dto.ImportSummary, error)) {
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

	summary, err := run(ctx.Request.Context(), reader)
	if err != nil {
		c.logger.Error().Err(err).Str("import", what).Msg("Import failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewImportResponse(what, summary))
}
