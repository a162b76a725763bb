package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(SchemeBcrypt, hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(SchemeBcrypt, hash, "wrong password"))
}

func TestVerifyPassword_Plain(t *testing.T) {
	t.Parallel()

	assert.True(t, VerifyPassword(SchemePlain, "160123737141P", "160123737141P"))
	assert.False(t, VerifyPassword(SchemePlain, "160123737141P", "160123737141p"))
	assert.False(t, VerifyPassword(SchemePlain, "160123737141P", ""))
}

func TestVerifyPassword_HashStringNeverAuthenticates(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret")
	require.NoError(t, err)

	// Presenting the stored hash itself must not pass under bcrypt
	assert.False(t, VerifyPassword(SchemeBcrypt, hash, hash))
}

func TestVerifyPassword_UnknownScheme(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("md5", "anything", "anything"))
}

func TestDetectScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stored string
		want   PasswordScheme
	}{
		{"$2a$10$abcdefghijklmnopqrstuv", SchemeBcrypt},
		{"$2b$10$abcdefghijklmnopqrstuv", SchemeBcrypt},
		{"$2y$10$abcdefghijklmnopqrstuv", SchemeBcrypt},
		{"160123737141P", SchemePlain},
		{"", SchemePlain},
		{"$1$legacy", SchemePlain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectScheme(tt.stored), "stored %q", tt.stored)
	}
}
