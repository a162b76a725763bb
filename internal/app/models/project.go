package models

import "time"

// ProjectType is one of the three fixed project classifications a
// student may submit at most once each.
type ProjectType string

const (
	ProjectMiniI  ProjectType = "mini-I"
	ProjectMiniII ProjectType = "mini-II"
	ProjectMajor  ProjectType = "major"
)

// ProjectTypes lists the valid classifications in submission order.
var ProjectTypes = []ProjectType{ProjectMiniI, ProjectMiniII, ProjectMajor}

// IsValidProjectType reports whether s names a known project type
func IsValidProjectType(s string) bool {
	switch ProjectType(s) {
	case ProjectMiniI, ProjectMiniII, ProjectMajor:
		return true
	}
	return false
}

// Project defines a project record based on the 'projects' table.
// ReportFile holds either a stored filename or an external link.
// Uniqueness over (RollNo, ProjectType) is enforced at the store level.
type Project struct {
	ID              int64       `json:"id" db:"id"`
	ProjectName     string      `json:"projectName" db:"project_name"`
	ProjectType     ProjectType `json:"projectType" db:"project_type"`
	Description     string      `json:"description" db:"description"`
	Domain          string      `json:"domain" db:"domain"`
	StudentName     string      `json:"studentName" db:"student_name"`
	Email           string      `json:"email" db:"email"`
	RollNo          string      `json:"rollNo" db:"roll_no"`
	Branch          string      `json:"branch" db:"branch"`
	AcademicYear    string      `json:"academicYear" db:"academic_year"`
	GithubLink      string      `json:"githubLink" db:"github_link"`
	PublishedLink   string      `json:"publishedLink" db:"published_link"`
	ReportFile      string      `json:"reportFile" db:"report_file"`
	UploadDate      time.Time   `json:"uploadDate" db:"upload_date"`
	UploadedByAdmin bool        `json:"uploadedByAdmin" db:"uploaded_by_admin"`
}
