package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
)

type fakeProjectStore struct {
	created   []*models.Project
	createErr error
	listOut   []models.Project
	typesOut  map[models.ProjectType]bool
}

func (f *fakeProjectStore) Create(_ context.Context, p *models.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProjectStore) List(_ context.Context, _ dto.ProjectFilter) ([]models.Project, error) {
	return f.listOut, nil
}

func (f *fakeProjectStore) TypesByRoll(_ context.Context, _ string) (map[models.ProjectType]bool, error) {
	return f.typesOut, nil
}

type fakeReportStorage struct {
	saved   int
	saveErr error
}

func (f *fakeReportStorage) SaveReport(_ *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved++
	return "stored-report.pdf", nil
}

func (f *fakeReportStorage) Path(_ string) (string, bool) { return "", false }

func validUploadRequest() *dto.ProjectUploadRequest {
	return &dto.ProjectUploadRequest{
		ProjectName:  "Smart Attendance",
		ProjectType:  "major",
		Description:  "Face recognition attendance",
		Domain:       "ML",
		StudentName:  "A Student",
		Email:        "a@example.com",
		RollNo:       "160123733001",
		Branch:       "B.E- COMPUTER SCIENCE AND ENGG.",
		AcademicYear: "2023-24",
	}
}

func TestProjectUpload(t *testing.T) {
	t.Parallel()

	store := &fakeProjectStore{}
	storage := &fakeReportStorage{}
	svc := NewProjectService(store, storage, zerolog.Nop())

	project, err := svc.Upload(context.Background(), validUploadRequest(), &multipart.FileHeader{Filename: "report.pdf"})
	require.NoError(t, err)

	assert.Equal(t, 1, storage.saved)
	assert.Equal(t, "stored-report.pdf", project.ReportFile)
	assert.Equal(t, models.ProjectMajor, project.ProjectType)
	require.Len(t, store.created, 1)
}

func TestProjectUpload_InvalidType(t *testing.T) {
	t.Parallel()

	storage := &fakeReportStorage{}
	svc := NewProjectService(&fakeProjectStore{}, storage, zerolog.Nop())

	req := validUploadRequest()
	req.ProjectType = "mini-III"

	_, err := svc.Upload(context.Background(), req, &multipart.FileHeader{Filename: "report.pdf"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Zero(t, storage.saved, "nothing should be stored for an invalid type")
}

func TestProjectUpload_MissingFile(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(&fakeProjectStore{}, &fakeReportStorage{}, zerolog.Nop())

	_, err := svc.Upload(context.Background(), validUploadRequest(), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestProjectUpload_DuplicateType(t *testing.T) {
	t.Parallel()

	store := &fakeProjectStore{createErr: apperrors.ErrProjectTypeExists}
	svc := NewProjectService(store, &fakeReportStorage{}, zerolog.Nop())

	_, err := svc.Upload(context.Background(), validUploadRequest(), &multipart.FileHeader{Filename: "report.pdf"})
	assert.ErrorIs(t, err, apperrors.ErrProjectTypeExists)
}

func TestProjectList_DerivesShortBranch(t *testing.T) {
	t.Parallel()

	store := &fakeProjectStore{listOut: []models.Project{
		{ProjectName: "One", Branch: "B.E- COMPUTER SCIENCE AND ENGG."},
		{ProjectName: "Two", Branch: "strange branch"},
	}}
	svc := NewProjectService(store, &fakeReportStorage{}, zerolog.Nop())

	out, err := svc.List(context.Background(), dto.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "CSE", out[0].BranchShort)
	assert.Equal(t, "strange branch", out[1].BranchShort)
}

func TestStudentStatus(t *testing.T) {
	t.Parallel()

	store := &fakeProjectStore{typesOut: map[models.ProjectType]bool{
		models.ProjectMiniI: true,
		models.ProjectMajor: true,
	}}
	svc := NewProjectService(store, &fakeReportStorage{}, zerolog.Nop())

	status, err := svc.StudentStatus(context.Background(), "160123733001")
	require.NoError(t, err)
	assert.True(t, status.MiniI)
	assert.False(t, status.MiniII)
	assert.True(t, status.Major)
}
