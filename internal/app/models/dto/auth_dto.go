package dto

// LoginRequest represents student login credentials
type LoginRequest struct {
	Roll     string `json:"roll" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful student login
type LoginResponse struct {
	Message         string `json:"message"`
	Token           string `json:"token"`
	IsAccessGranted bool   `json:"isAccessGranted"`
	StudentRollNo   string `json:"studentRollNo"`
}

// ForgotPasswordRequest asks for a reset token to be mailed
type ForgotPasswordRequest struct {
	Roll string `json:"roll" binding:"required"`
}

// ForgotPasswordResponse confirms the reset mail was dispatched
type ForgotPasswordResponse struct {
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
}

// ResetPasswordRequest consumes a reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ResetPasswordResponse confirms the password change
type ResetPasswordResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
