package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maithili/projectvault/internal/app/models/dto"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the wire. Responses carry a
// single message field; upstream causes never reach the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Student not found"})

	case errors.Is(err, apperrors.ErrFacultyNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Faculty not found"})

	case errors.Is(err, apperrors.ErrReportNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Report file not found"})

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: errMessage(err, "Resource not found")})

	case errors.Is(err, apperrors.ErrNoPasswordSet):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "No password set for this account"})

	case errors.Is(err, apperrors.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Incorrect password"})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})

	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid token"})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Permission denied"})

	case errors.Is(err, apperrors.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid or expired reset token"})

	case errors.Is(err, apperrors.ErrNoEmail):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "No email registered for this account"})

	case errors.Is(err, apperrors.ErrProjectTypeExists):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "This project type has already been uploaded for this student"})

	case errors.Is(err, apperrors.ErrUnknownDepartment):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Unknown department"})

	case errors.Is(err, apperrors.ErrStudentExists):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Student already exists"})

	case errors.Is(err, apperrors.ErrFacultyExists):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Faculty already exists"})

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: errMessage(err, "Invalid request")})

	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
	}
}

// errMessage prefers the wrapped CustomError message when one is set
func errMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
