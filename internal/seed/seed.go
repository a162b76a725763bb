// Package seed provisions the default accounts every fresh deployment
// expects: one demo student and one faculty member.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/repositories"
	"github.com/maithili/projectvault/internal/config"
	"github.com/maithili/projectvault/internal/pkg/auth"
)

// CreateDefaultData creates the seed accounts if they don't exist.
// Existing accounts are left untouched, so repeated startups are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg config.SeedConfig, lgr zerolog.Logger) error {
	studentRepo := repositories.NewStudentRepository(dbPool)
	facultyRepo := repositories.NewFacultyRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	exists, err := studentRepo.RollExists(ctx, cfg.DemoStudentRoll)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo student account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		demo := &models.User{
			Roll:            cfg.DemoStudentRoll,
			Password:        models.DefaultStudentPassword(cfg.DemoStudentRoll),
			PasswordScheme:  auth.SchemePlain,
			IsAccessGranted: true,
		}
		if err := studentRepo.Create(ctx, demo); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo student account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("roll", demo.Roll).Msg("Demo student account created")
		}
	}

	exists, err = facultyRepo.EmailExists(ctx, cfg.FacultyEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default faculty account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		faculty := &models.Faculty{
			Email:          cfg.FacultyEmail,
			Password:       cfg.FacultyPassword,
			PasswordScheme: auth.SchemePlain,
		}
		if err := facultyRepo.Create(ctx, faculty); err != nil {
			lgr.Error().Err(err).Msg("Error creating default faculty account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("email", faculty.Email).Msg("Default faculty account created")
		}
	}

	return finalErr
}
