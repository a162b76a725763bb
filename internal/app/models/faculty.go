package models

import (
	"time"

	"github.com/maithili/projectvault/internal/pkg/auth"
)

// Faculty defines a faculty credential record based on the 'faculties' table
type Faculty struct {
	ID             int64               `json:"id" db:"id"`
	Email          string              `json:"email" db:"email"`
	Password       string              `json:"-" db:"password"`
	PasswordScheme auth.PasswordScheme `json:"-" db:"password_scheme"`
	CreatedAt      time.Time           `json:"createdAt" db:"created_at"`
}
