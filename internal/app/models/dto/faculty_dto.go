package dto

// FacultyLoginRequest represents faculty login credentials
type FacultyLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FacultyLoginResponse represents a successful faculty login
type FacultyLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// DepartmentToggleResponse reports the flag state after a toggle
type DepartmentToggleResponse struct {
	Department    string `json:"department"`
	AccessGranted bool   `json:"accessGranted"`
	Message       string `json:"message"`
}

// StudentViewAccessResponse reports whether a student's department
// currently permits content access
type StudentViewAccessResponse struct {
	HasViewAccess bool   `json:"hasViewAccess"`
	Branch        string `json:"branch"`
}
