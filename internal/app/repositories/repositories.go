package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all store accessors
type Repositories struct {
	StudentRepository *StudentRepository
	FacultyRepository *FacultyRepository
	ProjectRepository *ProjectRepository
}

// NewRepositories creates all repositories over one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		ProjectRepository: NewProjectRepository(db),
	}
}
