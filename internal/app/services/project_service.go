package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/filestorage"
)

// ProjectStore is the slice of the project repository the catalog
// flows depend on.
type ProjectStore interface {
	Create(ctx context.Context, p *models.Project) error
	List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error)
	TypesByRoll(ctx context.Context, roll string) (map[models.ProjectType]bool, error)
}

// ProjectService handles project submission and catalog queries
type ProjectService struct {
	projects ProjectStore
	storage  filestorage.ReportStorage
	logger   zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects ProjectStore, storage filestorage.ReportStorage, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		storage:  storage,
		logger:   logger,
	}
}

// Upload stores a report file and creates the project record. The
// store's (roll, type) uniqueness turns duplicates into
// ErrProjectTypeExists.
func (s *ProjectService) Upload(ctx context.Context, req *dto.ProjectUploadRequest, report *multipart.FileHeader) (*models.Project, error) {
	if !models.IsValidProjectType(req.ProjectType) {
		return nil, apperrors.NewValidationError("Invalid project type")
	}
	if report == nil {
		return nil, apperrors.NewValidationError("Report file is required")
	}

	storedName, err := s.storage.SaveReport(report)
	if err != nil {
		return nil, apperrors.NewUpstreamError(err, "Failed to store report file")
	}

	project := &models.Project{
		ProjectName:     req.ProjectName,
		ProjectType:     models.ProjectType(req.ProjectType),
		Description:     req.Description,
		Domain:          req.Domain,
		StudentName:     req.StudentName,
		Email:           req.Email,
		RollNo:          req.RollNo,
		Branch:          req.Branch,
		AcademicYear:    req.AcademicYear,
		GithubLink:      req.GithubLink,
		PublishedLink:   req.PublishedLink,
		ReportFile:      storedName,
		UploadedByAdmin: req.UploadedByAdmin,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Str("roll", project.RollNo).Str("type", string(project.ProjectType)).Msg("Project uploaded")
	return project, nil
}

// List returns catalog entries matching the filter, each carrying the
// derived short branch label.
func (s *ProjectService) List(ctx context.Context, filter dto.ProjectFilter) ([]dto.ProjectResponse, error) {
	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ProjectResponse{
			Project:     p,
			BranchShort: models.ShortBranch(p.Branch),
		})
	}
	return out, nil
}

// StudentStatus reports which of the three project types a student has
// already submitted.
func (s *ProjectService) StudentStatus(ctx context.Context, roll string) (*dto.StudentStatusResponse, error) {
	types, err := s.projects.TypesByRoll(ctx, roll)
	if err != nil {
		return nil, err
	}

	return &dto.StudentStatusResponse{
		MiniI:  types[models.ProjectMiniI],
		MiniII: types[models.ProjectMiniII],
		Major:  types[models.ProjectMajor],
	}, nil
}
