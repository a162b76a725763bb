package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/auth"
	"github.com/maithili/projectvault/internal/pkg/spreadsheet"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// projectRowFields are the columns a bulk project row must carry
var projectRowFields = []string{
	"projectName", "projectType", "description", "domain",
	"studentName", "email", "rollNo", "branch", "academicYear",
}

// StudentImporter is the slice of the student repository bulk imports
// depend on.
type StudentImporter interface {
	Create(ctx context.Context, user *models.User) error
}

// FacultyImporter is the slice of the faculty repository bulk imports
// depend on.
type FacultyImporter interface {
	Create(ctx context.Context, faculty *models.Faculty) error
}

// ProjectImporter is the slice of the project repository bulk imports
// depend on.
type ProjectImporter interface {
	Create(ctx context.Context, p *models.Project) error
}

// ImportService runs the three spreadsheet imports. Rows are attempted
// independently; one bad row never aborts the batch.
type ImportService struct {
	students               StudentImporter
	faculties              FacultyImporter
	projects               ProjectImporter
	facultyDefaultPassword string
	logger                 zerolog.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	students StudentImporter,
	faculties FacultyImporter,
	projects ProjectImporter,
	facultyDefaultPassword string,
	logger zerolog.Logger,
) *ImportService {
	return &ImportService{
		students:               students,
		faculties:              faculties,
		projects:               projects,
		facultyDefaultPassword: facultyDefaultPassword,
		logger:                 logger,
	}
}

// ImportStudents provisions student accounts from a workbook. Each row
// needs a rollNo; the password defaults to rollNo+"P" with access
// disabled.
func (s *ImportService) ImportStudents(ctx context.Context, workbook io.Reader) (dto.ImportSummary, error) {
	rows, err := spreadsheet.ReadRows(workbook)
	if err != nil {
		return dto.ImportSummary{}, apperrors.NewUpstreamError(err, "Failed to parse workbook")
	}

	var summary dto.ImportSummary
	for _, row := range rows {
		roll := row.Get("rollNo")
		if err := s.importStudentRow(ctx, row, roll); err != nil {
			summary.AddFailure(roll, err)
			continue
		}
		summary.Successful++
	}

	s.logger.Info().Int("successful", summary.Successful).Int("failed", summary.Failed).Msg("Student import finished")
	return summary, nil
}

func (s *ImportService) importStudentRow(ctx context.Context, row spreadsheet.Row, roll string) error {
	if roll == "" {
		return fmt.Errorf("roll number is required")
	}

	user := &models.User{
		Roll:            roll,
		Password:        models.DefaultStudentPassword(roll),
		PasswordScheme:  auth.SchemePlain,
		Email:           row.Get("email"),
		IsAccessGranted: false,
	}
	return s.students.Create(ctx, user)
}

// ImportFaculty provisions faculty accounts from a workbook. Each row
// needs a valid email; the password is the configured import default.
func (s *ImportService) ImportFaculty(ctx context.Context, workbook io.Reader) (dto.ImportSummary, error) {
	rows, err := spreadsheet.ReadRows(workbook)
	if err != nil {
		return dto.ImportSummary{}, apperrors.NewUpstreamError(err, "Failed to parse workbook")
	}

	var summary dto.ImportSummary
	for _, row := range rows {
		addr := row.Get("email")
		if err := s.importFacultyRow(ctx, addr); err != nil {
			summary.AddFailure(addr, err)
			continue
		}
		summary.Successful++
	}

	s.logger.Info().Int("successful", summary.Successful).Int("failed", summary.Failed).Msg("Faculty import finished")
	return summary, nil
}

func (s *ImportService) importFacultyRow(ctx context.Context, addr string) error {
	if addr == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(addr) {
		return fmt.Errorf("invalid email format")
	}

	faculty := &models.Faculty{
		Email:          addr,
		Password:       s.facultyDefaultPassword,
		PasswordScheme: auth.SchemePlain,
	}
	return s.faculties.Create(ctx, faculty)
}

// ImportProjects creates project records from a workbook. Rows carry
// an external report link instead of an uploaded file and are always
// marked admin-uploaded.
func (s *ImportService) ImportProjects(ctx context.Context, workbook io.Reader) (dto.ImportSummary, error) {
	rows, err := spreadsheet.ReadRows(workbook)
	if err != nil {
		return dto.ImportSummary{}, apperrors.NewUpstreamError(err, "Failed to parse workbook")
	}

	var summary dto.ImportSummary
	for _, row := range rows {
		if err := s.importProjectRow(ctx, row); err != nil {
			summary.AddFailure(row.Get("studentName"), err)
			continue
		}
		summary.Successful++
	}

	s.logger.Info().Int("successful", summary.Successful).Int("failed", summary.Failed).Msg("Project import finished")
	return summary, nil
}

func (s *ImportService) importProjectRow(ctx context.Context, row spreadsheet.Row) error {
	var missing []string
	for _, field := range projectRowFields {
		if row.Get(field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	if !models.IsValidProjectType(row.Get("projectType")) {
		return fmt.Errorf("invalid project type")
	}
	if row.Get("reportFile") == "" {
		return fmt.Errorf("report file link is required")
	}

	project := &models.Project{
		ProjectName:     row.Get("projectName"),
		ProjectType:     models.ProjectType(row.Get("projectType")),
		Description:     row.Get("description"),
		Domain:          row.Get("domain"),
		StudentName:     row.Get("studentName"),
		Email:           row.Get("email"),
		RollNo:          row.Get("rollNo"),
		Branch:          row.Get("branch"),
		AcademicYear:    row.Get("academicYear"),
		GithubLink:      row.Get("githubLink"),
		PublishedLink:   row.Get("publishedLink"),
		ReportFile:      row.Get("reportFile"),
		UploadedByAdmin: true,
	}
	return s.projects.Create(ctx, project)
}
