package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/dberrors"
)

// FacultyRepository manages faculty credential records
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// Create inserts a new faculty record
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculties (email, password, password_scheme)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, faculty.Email, faculty.Password,
		faculty.PasswordScheme).Scan(&faculty.ID, &faculty.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyExists
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}
	return nil
}

// GetByEmail retrieves a faculty by email
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	query := `SELECT id, email, password, password_scheme, created_at FROM faculties WHERE email = $1`

	var f models.Faculty
	err := r.db.QueryRow(ctx, query, email).Scan(&f.ID, &f.Email, &f.Password,
		&f.PasswordScheme, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return &f, nil
}

// EmailExists checks whether a faculty email is already registered
func (r *FacultyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM faculties WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking faculty existence: %w", err)
	}
	return exists, nil
}
