package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/dberrors"
)

// ProjectRepository manages project records
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, project_name, project_type, description, domain, student_name,
	email, roll_no, branch, academic_year, github_link, published_link,
	report_file, upload_date, uploaded_by_admin`

// Create inserts a new project record. The (roll_no, project_type)
// unique index turns duplicates into ErrProjectTypeExists.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (project_name, project_type, description, domain,
			student_name, email, roll_no, branch, academic_year,
			github_link, published_link, report_file, uploaded_by_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, upload_date
	`

	err := r.db.QueryRow(ctx, query,
		p.ProjectName, p.ProjectType, p.Description, p.Domain,
		p.StudentName, p.Email, p.RollNo, p.Branch, p.AcademicYear,
		p.GithubLink, p.PublishedLink, p.ReportFile, p.UploadedByAdmin,
	).Scan(&p.ID, &p.UploadDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "projects_roll_no_project_type_key") {
			return apperrors.ErrProjectTypeExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("Project already exists")
		}
		return fmt.Errorf("error creating project: %w", err)
	}
	return nil
}

// ExistsByRollAndType checks whether a student already submitted a
// given project type
func (r *ProjectRepository) ExistsByRollAndType(ctx context.Context, roll string, projectType models.ProjectType) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE roll_no = $1 AND project_type = $2)`,
		roll, projectType).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking project existence: %w", err)
	}
	return exists, nil
}

// List returns projects matching the filter in the requested order
func (r *ProjectRepository) List(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		err := rows.Scan(&p.ID, &p.ProjectName, &p.ProjectType, &p.Description,
			&p.Domain, &p.StudentName, &p.Email, &p.RollNo, &p.Branch,
			&p.AcademicYear, &p.GithubLink, &p.PublishedLink, &p.ReportFile,
			&p.UploadDate, &p.UploadedByAdmin)
		if err != nil {
			return nil, fmt.Errorf("error scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// buildListQuery translates a catalog filter into SQL. "all" and empty
// values leave a dimension unfiltered; branch short codes are resolved
// to canonical labels with unmapped codes passed through verbatim.
func buildListQuery(filter dto.ProjectFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + projectColumns + ` FROM projects`)

	var conditions []string
	var args []interface{}

	addCondition := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Type != "" && filter.Type != "all" {
		addCondition(`project_type = $%d`, filter.Type)
	}
	if filter.AcademicYear != "" && filter.AcademicYear != "all" {
		addCondition(`academic_year = $%d`, filter.AcademicYear)
	}
	if filter.Branch != "" && filter.Branch != "all" {
		addCondition(`branch = $%d`, models.CanonicalBranch(filter.Branch))
	}
	if filter.Domain != "" && filter.Domain != "all" {
		addCondition(`domain = $%d`, filter.Domain)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			`(project_name ILIKE $%d OR description ILIKE $%d OR student_name ILIKE $%d OR domain ILIKE $%d)`,
			n, n, n, n))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	switch filter.Sort {
	case "asc":
		sb.WriteString(" ORDER BY academic_year ASC")
	case "desc":
		sb.WriteString(" ORDER BY academic_year DESC")
	default:
		sb.WriteString(" ORDER BY upload_date DESC")
	}

	return sb.String(), args
}

// TypesByRoll reports which project types a student has submitted
func (r *ProjectRepository) TypesByRoll(ctx context.Context, roll string) (map[models.ProjectType]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT project_type FROM projects WHERE roll_no = $1`, roll)
	if err != nil {
		return nil, fmt.Errorf("error fetching project types: %w", err)
	}
	defer rows.Close()

	types := make(map[models.ProjectType]bool)
	for rows.Next() {
		var t models.ProjectType
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("error scanning project type: %w", err)
		}
		types[t] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project types: %w", err)
	}

	return types, nil
}
