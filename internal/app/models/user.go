package models

import (
	"time"

	"github.com/maithili/projectvault/internal/pkg/auth"
)

// User defines a student credential record based on the 'users' table.
// The password scheme is fixed when the credential is written: imports
// store cleartext defaults, the reset flow stores bcrypt hashes.
type User struct {
	ID              int64               `json:"id" db:"id"`
	Roll            string              `json:"roll" db:"roll"`
	Password        string              `json:"-" db:"password"`
	PasswordScheme  auth.PasswordScheme `json:"-" db:"password_scheme"`
	Email           string              `json:"email" db:"email"`
	IsAccessGranted bool                `json:"isAccessGranted" db:"is_access_granted"`
	ResetToken      *string             `json:"-" db:"reset_token"`
	ResetExpires    *time.Time          `json:"-" db:"reset_expires"`
	CreatedAt       time.Time           `json:"createdAt" db:"created_at"`
}

// DefaultStudentPassword derives the import-time default password for a
// roll number.
func DefaultStudentPassword(roll string) string {
	return roll + "P"
}
