package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
	"github.com/maithili/projectvault/internal/pkg/auth"
)

// workbook builds an in-memory xlsx with a header row and data rows
func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

type fakeStudentImporter struct {
	created  []*models.User
	existing map[string]bool
}

func (f *fakeStudentImporter) Create(_ context.Context, user *models.User) error {
	if f.existing[user.Roll] {
		return apperrors.ErrStudentExists
	}
	f.created = append(f.created, user)
	return nil
}

type fakeFacultyImporter struct {
	created []*models.Faculty
}

func (f *fakeFacultyImporter) Create(_ context.Context, faculty *models.Faculty) error {
	f.created = append(f.created, faculty)
	return nil
}

type fakeProjectImporter struct {
	created  []*models.Project
	existing map[string]bool // keyed roll+"/"+type
}

func (f *fakeProjectImporter) Create(_ context.Context, p *models.Project) error {
	if f.existing[p.RollNo+"/"+string(p.ProjectType)] {
		return apperrors.ErrProjectTypeExists
	}
	f.created = append(f.created, p)
	return nil
}

func newTestImportService(students *fakeStudentImporter, faculties *fakeFacultyImporter, projects *fakeProjectImporter) *ImportService {
	return NewImportService(students, faculties, projects, "cbit123", zerolog.Nop())
}

func TestImportStudents(t *testing.T) {
	t.Parallel()

	students := &fakeStudentImporter{existing: map[string]bool{"160123733002": true}}
	svc := newTestImportService(students, &fakeFacultyImporter{}, &fakeProjectImporter{})

	wb := workbook(t,
		[]interface{}{"rollNo", "email"},
		[]interface{}{"160123733001", "one@example.com"},
		[]interface{}{"160123733002", "two@example.com"}, // duplicate
		[]interface{}{"", "three@example.com"},           // missing roll
		[]interface{}{"160123733004", ""},                // email optional
	)

	summary, err := svc.ImportStudents(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, "160123733002", summary.Errors[0].Row)
	assert.Equal(t, "Unknown", summary.Errors[1].Row)

	require.Len(t, students.created, 2)
	first := students.created[0]
	assert.Equal(t, "160123733001P", first.Password, "default password is roll plus P")
	assert.Equal(t, auth.SchemePlain, first.PasswordScheme)
	assert.False(t, first.IsAccessGranted)
}

func TestImportFaculty(t *testing.T) {
	t.Parallel()

	faculties := &fakeFacultyImporter{}
	svc := newTestImportService(&fakeStudentImporter{}, faculties, &fakeProjectImporter{})

	wb := workbook(t,
		[]interface{}{"email"},
		[]interface{}{"prof@example.edu"},
		[]interface{}{"not-an-email"},
		[]interface{}{"second@example.edu"},
	)

	summary, err := svc.ImportFaculty(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0].Error, "invalid email")

	require.Len(t, faculties.created, 2)
	assert.Equal(t, "cbit123", faculties.created[0].Password, "import default password")
	assert.Equal(t, auth.SchemePlain, faculties.created[0].PasswordScheme)
}

func projectHeader() []interface{} {
	return []interface{}{
		"projectName", "projectType", "description", "domain",
		"studentName", "email", "rollNo", "branch", "academicYear",
		"reportFile", "githubLink",
	}
}

func TestImportProjects(t *testing.T) {
	t.Parallel()

	projects := &fakeProjectImporter{existing: map[string]bool{"160123733009/major": true}}
	svc := newTestImportService(&fakeStudentImporter{}, &fakeFacultyImporter{}, projects)

	wb := workbook(t,
		projectHeader(),
		[]interface{}{
			"Smart Attendance", "major", "Face recognition attendance", "ML",
			"A Student", "a@example.com", "160123733001", "B.E- COMPUTER SCIENCE AND ENGG.", "2023-24",
			"https://drive.example.com/report1", "https://github.com/a/attendance",
		},
		[]interface{}{
			"Duplicate Entry", "major", "Already present", "ML",
			"B Student", "b@example.com", "160123733009", "B.E- COMPUTER SCIENCE AND ENGG.", "2023-24",
			"https://drive.example.com/report2", "",
		},
		[]interface{}{
			"Bad Type", "mini-III", "Unknown classification", "IoT",
			"C Student", "c@example.com", "160123733003", "B.E- COMPUTER SCIENCE AND ENGG.", "2023-24",
			"https://drive.example.com/report3", "",
		},
	)

	summary, err := svc.ImportProjects(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 2, summary.Failed)

	require.Len(t, projects.created, 1)
	created := projects.created[0]
	assert.Equal(t, models.ProjectMajor, created.ProjectType)
	assert.True(t, created.UploadedByAdmin)
	assert.Equal(t, "https://drive.example.com/report1", created.ReportFile)
}

func TestImportProjects_MissingFields(t *testing.T) {
	t.Parallel()

	projects := &fakeProjectImporter{}
	svc := newTestImportService(&fakeStudentImporter{}, &fakeFacultyImporter{}, projects)

	wb := workbook(t,
		projectHeader(),
		[]interface{}{
			"No Description", "mini-I", "", "",
			"D Student", "d@example.com", "160123733004", "B.E- COMPUTER SCIENCE AND ENGG.", "2023-24",
			"https://drive.example.com/report4", "",
		},
	)

	summary, err := svc.ImportProjects(context.Background(), wb)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Successful)
	require.Len(t, summary.Errors, 1)
	assert.True(t, strings.Contains(summary.Errors[0].Error, "description"))
	assert.True(t, strings.Contains(summary.Errors[0].Error, "domain"))
	assert.Empty(t, projects.created)
}

func TestImport_UnreadableWorkbook(t *testing.T) {
	t.Parallel()

	svc := newTestImportService(&fakeStudentImporter{}, &fakeFacultyImporter{}, &fakeProjectImporter{})

	_, err := svc.ImportStudents(context.Background(), bytes.NewBufferString("not a workbook"))
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
}
