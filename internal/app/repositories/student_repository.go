package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/auth"
	"github.com/maithili/projectvault/internal/pkg/dberrors"
)

// StudentRepository manages student credential records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, roll, password, password_scheme, email, is_access_granted, reset_token, reset_expires, created_at`

func scanStudent(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Roll, &u.Password, &u.PasswordScheme, &u.Email,
		&u.IsAccessGranted, &u.ResetToken, &u.ResetExpires, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return &u, nil
}

// Create inserts a new student record
func (r *StudentRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (roll, password, password_scheme, email, is_access_granted)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Roll, user.Password, user.PasswordScheme,
		user.Email, user.IsAccessGranted).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByRoll retrieves a student by roll number
func (r *StudentRepository) GetByRoll(ctx context.Context, roll string) (*models.User, error) {
	query := `SELECT ` + studentColumns + ` FROM users WHERE roll = $1`
	return scanStudent(r.db.QueryRow(ctx, query, roll))
}

// RollExists checks whether a roll number is already registered
func (r *StudentRepository) RollExists(ctx context.Context, roll string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE roll = $1)`, roll).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking roll existence: %w", err)
	}
	return exists, nil
}

// SetResetToken stores a reset token and its expiry on the record
func (r *StudentRepository) SetResetToken(ctx context.Context, roll, token string, expires time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET reset_token = $2, reset_expires = $3 WHERE roll = $1`,
		roll, token, expires)
	if err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ClearResetToken removes any pending reset token from the record
func (r *StudentRepository) ClearResetToken(ctx context.Context, roll string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET reset_token = NULL, reset_expires = NULL WHERE roll = $1`, roll)
	if err != nil {
		return fmt.Errorf("error clearing reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken atomically matches a pending, unexpired token,
// replaces the password with the given bcrypt hash and clears the
// token fields. Match and clear are one statement so two concurrent
// consumers can never both succeed on the same token. Returns the roll
// of the updated record.
func (r *StudentRepository) ConsumeResetToken(ctx context.Context, token, hashedPassword string) (string, error) {
	query := `
		UPDATE users
		SET password = $2,
		    password_scheme = $3,
		    reset_token = NULL,
		    reset_expires = NULL
		WHERE reset_token = $1 AND reset_expires > $4
		RETURNING roll
	`

	var roll string
	err := r.db.QueryRow(ctx, query, token, hashedPassword, auth.SchemeBcrypt, time.Now()).Scan(&roll)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrInvalidResetToken
		}
		return "", fmt.Errorf("error consuming reset token: %w", err)
	}
	return roll, nil
}
