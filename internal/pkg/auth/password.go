package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme tags how a stored password is represented. The scheme
// is decided once when the credential is written, never re-derived by
// inspecting the stored value at login time.
type PasswordScheme string

const (
	// SchemePlain marks an admin-provisioned cleartext password.
	SchemePlain PasswordScheme = "plain"
	// SchemeBcrypt marks a salted bcrypt hash set via the reset flow.
	SchemeBcrypt PasswordScheme = "bcrypt"
)

// BcryptCost is the fixed work factor for newly hashed passwords.
const BcryptCost = 10

// HashPassword hashes a password with the fixed work factor
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks a presented password against the stored
// representation according to its scheme. A presented password equal to
// the raw hash string never authenticates under SchemeBcrypt.
func VerifyPassword(scheme PasswordScheme, stored, presented string) bool {
	switch scheme {
	case SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
	case SchemePlain:
		return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
	default:
		return false
	}
}

// DetectScheme classifies a stored password from rows written before
// scheme tagging existed. Only used when migrating legacy data.
func DetectScheme(stored string) PasswordScheme {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, prefix) {
			return SchemeBcrypt
		}
	}
	return SchemePlain
}
