package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/auth"
	"github.com/maithili/projectvault/internal/pkg/email"
)

// resetTokenBytes is the entropy of a reset token before hex encoding
const resetTokenBytes = 32

// resetTokenTTL is how long an issued reset token stays consumable
const resetTokenTTL = time.Hour

// StudentStore is the slice of the student repository the auth flows
// depend on.
type StudentStore interface {
	GetByRoll(ctx context.Context, roll string) (*models.User, error)
	SetResetToken(ctx context.Context, roll, token string, expires time.Time) error
	ClearResetToken(ctx context.Context, roll string) error
	ConsumeResetToken(ctx context.Context, token, hashedPassword string) (string, error)
}

// FacultyStore is the slice of the faculty repository the auth flows
// depend on.
type FacultyStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
}

// AuthService handles student and faculty authentication plus the
// reset-token lifecycle.
type AuthService struct {
	students   StudentStore
	faculties  FacultyStore
	mailer     email.ResetMailer
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	students StudentStore,
	faculties FacultyStore,
	mailer email.ResetMailer,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		students:   students,
		faculties:  faculties,
		mailer:     mailer,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a student and issues a session token. Every
// account, the seeded demo student included, goes through this path.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.students.GetByRoll(ctx, req.Roll)
	if err != nil {
		return nil, err
	}

	if user.Password == "" {
		return nil, apperrors.ErrNoPasswordSet
	}

	if !auth.VerifyPassword(user.PasswordScheme, user.Password, req.Password) {
		return nil, apperrors.ErrIncorrectPassword
	}

	token, err := s.jwtService.GenerateStudentToken(user.Roll)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.LoginResponse{
		Message:         "Login successful",
		Token:           token,
		IsAccessGranted: user.IsAccessGranted,
		StudentRollNo:   user.Roll,
	}, nil
}

// FacultyLogin authenticates a faculty member and issues a session
// token carrying the faculty role.
func (s *AuthService) FacultyLogin(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.FacultyLoginResponse, error) {
	faculty, err := s.faculties.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password answer identically
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(faculty.PasswordScheme, faculty.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateFacultyToken(faculty.Email)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.FacultyLoginResponse{
		Message: "Faculty login successful",
		Token:   token,
	}, nil
}

// RequestPasswordReset issues a time-boxed reset token and mails it.
// If the mail cannot be dispatched the token is cleared again so a
// failed request never leaves a valid pending token behind.
func (s *AuthService) RequestPasswordReset(ctx context.Context, roll string) error {
	user, err := s.students.GetByRoll(ctx, roll)
	if err != nil {
		return err
	}

	if user.Email == "" {
		return apperrors.ErrNoEmail
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expires := time.Now().Add(resetTokenTTL)
	if err := s.students.SetResetToken(ctx, user.Roll, token, expires); err != nil {
		return err
	}

	if err := s.mailer.SendResetEmail(user.Email, token, user.Roll); err != nil {
		s.logger.Error().Err(err).Str("roll", user.Roll).Msg("Failed to send reset email")
		if clearErr := s.students.ClearResetToken(ctx, user.Roll); clearErr != nil {
			s.logger.Error().Err(clearErr).Str("roll", user.Roll).Msg("Failed to clear reset token after send failure")
		}
		return apperrors.NewUpstreamError(err, "Failed to send reset email")
	}

	s.logger.Info().Str("roll", user.Roll).Time("expires", expires).Msg("Reset token issued")
	return nil
}

// ResetPassword consumes a reset token and stores the new password as
// a bcrypt hash. Unknown, expired and already-consumed tokens all fail
// with the same answer.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	roll, err := s.students.ConsumeResetToken(ctx, token, hashed)
	if err != nil {
		return err
	}

	s.logger.Info().Str("roll", roll).Msg("Password reset successful")
	return nil
}

// generateResetToken returns a hex-encoded token with 32 bytes of
// entropy.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
