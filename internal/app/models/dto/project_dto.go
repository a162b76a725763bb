package dto

import "github.com/maithili/projectvault/internal/app/models"

// ProjectUploadRequest represents the multipart form fields of a
// single project submission. The report file travels separately.
type ProjectUploadRequest struct {
	ProjectName     string `form:"projectName" binding:"required"`
	ProjectType     string `form:"projectType" binding:"required,projecttype"`
	Description     string `form:"description" binding:"required"`
	Domain          string `form:"domain" binding:"required"`
	StudentName     string `form:"studentName" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	RollNo          string `form:"rollNo" binding:"required"`
	Branch          string `form:"branch" binding:"required"`
	AcademicYear    string `form:"academicYear" binding:"required"`
	GithubLink      string `form:"githubLink"`
	PublishedLink   string `form:"publishedLink"`
	UploadedByAdmin bool   `form:"uploadedByAdmin"`
}

// ProjectFilter carries the optional catalog query parameters. A zero
// value or the literal "all" leaves the dimension unfiltered.
type ProjectFilter struct {
	Type         string `form:"type"`
	Search       string `form:"search"`
	AcademicYear string `form:"academicYear"`
	Branch       string `form:"branch"`
	Domain       string `form:"domain"`
	Sort         string `form:"sort"`
}

// ProjectResponse is a project record with the derived short branch
type ProjectResponse struct {
	models.Project
	BranchShort string `json:"branchShort"`
}

// StudentStatusResponse reports which project types a student has
// already submitted
type StudentStatusResponse struct {
	MiniI  bool `json:"mini-I"`
	MiniII bool `json:"mini-II"`
	Major  bool `json:"major"`
}
