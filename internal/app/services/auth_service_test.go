package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/auth"
)

// --- fakes ---

type fakeStudentStore struct {
	users map[string]*models.User

	setTokenRoll    string
	setToken        string
	clearedRoll     string
	consumeErr      error
	consumedToken   string
	consumedRoll    string
	storedPassword  string
	setResetTokenFn func() error
}

func newFakeStudentStore(users ...*models.User) *fakeStudentStore {
	s := &fakeStudentStore{users: make(map[string]*models.User)}
	for _, u := range users {
		s.users[u.Roll] = u
	}
	return s
}

func (f *fakeStudentStore) GetByRoll(_ context.Context, roll string) (*models.User, error) {
	u, ok := f.users[roll]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return u, nil
}

func (f *fakeStudentStore) SetResetToken(_ context.Context, roll, token string, _ time.Time) error {
	if f.setResetTokenFn != nil {
		if err := f.setResetTokenFn(); err != nil {
			return err
		}
	}
	f.setTokenRoll = roll
	f.setToken = token
	return nil
}

func (f *fakeStudentStore) ClearResetToken(_ context.Context, roll string) error {
	f.clearedRoll = roll
	return nil
}

func (f *fakeStudentStore) ConsumeResetToken(_ context.Context, token, hashedPassword string) (string, error) {
	if f.consumeErr != nil {
		return "", f.consumeErr
	}
	f.consumedToken = token
	f.storedPassword = hashedPassword
	return f.consumedRoll, nil
}

type fakeFacultyStore struct {
	faculties map[string]*models.Faculty
}

func newFakeFacultyStore(faculties ...*models.Faculty) *fakeFacultyStore {
	s := &fakeFacultyStore{faculties: make(map[string]*models.Faculty)}
	for _, f := range faculties {
		s.faculties[f.Email] = f
	}
	return s
}

func (f *fakeFacultyStore) GetByEmail(_ context.Context, email string) (*models.Faculty, error) {
	faculty, ok := f.faculties[email]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

type fakeMailer struct {
	sent    []string
	sendErr error
}

func (f *fakeMailer) SendResetEmail(toEmail, token, roll string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func newTestAuthService(students *fakeStudentStore, faculties *fakeFacultyStore, mailer *fakeMailer) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "projectvault.test",
	})
	return NewAuthService(students, faculties, mailer, jwtService, zerolog.Nop())
}

// --- student login ---

func TestLogin_PlainPassword(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.User{
		Roll:            "160123737141",
		Password:        "160123737141P",
		PasswordScheme:  auth.SchemePlain,
		IsAccessGranted: true,
	})
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Roll: "160123737141", Password: "160123737141P"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.IsAccessGranted)
	assert.Equal(t, "160123737141", resp.StudentRollNo)
}

func TestLogin_BcryptPassword(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("new-password-123")
	require.NoError(t, err)

	students := newFakeStudentStore(&models.User{
		Roll:           "160123733001",
		Password:       hash,
		PasswordScheme: auth.SchemeBcrypt,
	})
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Roll: "160123733001", Password: "new-password-123"})
	require.NoError(t, err)
	assert.False(t, resp.IsAccessGranted)

	// Presenting the hash string itself must not authenticate
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Roll: "160123733001", Password: hash})
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)
}

func TestLogin_UnknownStudent(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeStudentStore(), newFakeFacultyStore(), &fakeMailer{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Roll: "160123737199", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestLogin_NoPasswordSet(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.User{Roll: "160123737141", PasswordScheme: auth.SchemePlain})
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Roll: "160123737141", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrNoPasswordSet)
}

func TestLogin_IncorrectPassword(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.User{
		Roll:           "160123737141",
		Password:       "160123737141P",
		PasswordScheme: auth.SchemePlain,
	})
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Roll: "160123737141", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)
}

// --- faculty login ---

func TestFacultyLogin(t *testing.T) {
	t.Parallel()

	faculties := newFakeFacultyStore(&models.Faculty{
		Email:          "amjamaithili@gmail.com",
		Password:       "12345",
		PasswordScheme: auth.SchemePlain,
	})
	svc := newTestAuthService(newFakeStudentStore(), faculties, &fakeMailer{})

	resp, err := svc.FacultyLogin(context.Background(), &dto.FacultyLoginRequest{
		Email:    "amjamaithili@gmail.com",
		Password: "12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestFacultyLogin_UniformError(t *testing.T) {
	t.Parallel()

	faculties := newFakeFacultyStore(&models.Faculty{
		Email:          "amjamaithili@gmail.com",
		Password:       "12345",
		PasswordScheme: auth.SchemePlain,
	})
	svc := newTestAuthService(newFakeStudentStore(), faculties, &fakeMailer{})

	// Unknown email and wrong password must be indistinguishable
	_, unknownErr := svc.FacultyLogin(context.Background(), &dto.FacultyLoginRequest{
		Email:    "nobody@example.com",
		Password: "12345",
	})
	_, wrongErr := svc.FacultyLogin(context.Background(), &dto.FacultyLoginRequest{
		Email:    "amjamaithili@gmail.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
}

// --- password reset ---

func TestRequestPasswordReset(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.User{
		Roll:  "160123737141",
		Email: "student@example.com",
	})
	mailer := &fakeMailer{}
	svc := newTestAuthService(students, newFakeFacultyStore(), mailer)

	err := svc.RequestPasswordReset(context.Background(), "160123737141")
	require.NoError(t, err)

	assert.Equal(t, "160123737141", students.setTokenRoll)
	assert.Len(t, students.setToken, 64, "32 bytes of entropy hex-encoded")
	assert.Equal(t, []string{"student@example.com"}, mailer.sent)
	assert.Empty(t, students.clearedRoll)
}

func TestRequestPasswordReset_NoEmail(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.User{Roll: "160123737141"})
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	err := svc.RequestPasswordReset(context.Background(), "160123737141")
	assert.ErrorIs(t, err, apperrors.ErrNoEmail)
	assert.Empty(t, students.setTokenRoll, "no token should be issued without an email")
}

func TestRequestPasswordReset_MailFailureClearsToken(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore(&models.User{
		Roll:  "160123737141",
		Email: "student@example.com",
	})
	mailer := &fakeMailer{sendErr: errors.New("smtp unreachable")}
	svc := newTestAuthService(students, newFakeFacultyStore(), mailer)

	err := svc.RequestPasswordReset(context.Background(), "160123737141")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	assert.Equal(t, "160123737141", students.clearedRoll, "failed dispatch must clear the pending token")
}

func TestResetPassword(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore()
	students.consumedRoll = "160123737141"
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	err := svc.ResetPassword(context.Background(), "sometoken", "brand-new-password")
	require.NoError(t, err)

	assert.Equal(t, "sometoken", students.consumedToken)
	assert.True(t, auth.VerifyPassword(auth.SchemeBcrypt, students.storedPassword, "brand-new-password"),
		"stored password must be a bcrypt hash of the new password")
}

func TestResetPassword_InvalidToken(t *testing.T) {
	t.Parallel()

	students := newFakeStudentStore()
	students.consumeErr = apperrors.ErrInvalidResetToken
	svc := newTestAuthService(students, newFakeFacultyStore(), &fakeMailer{})

	err := svc.ResetPassword(context.Background(), "expired", "brand-new-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}
