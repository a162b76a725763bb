package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalBranch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "B.E- COMPUTER SCIENCE AND ENGG.", CanonicalBranch("CSE"))
	assert.Equal(t, "B.TECH- BIO TECHNOLOGY", CanonicalBranch("BIO-TECH"))

	// Unmapped values pass through so ad-hoc filters still match
	assert.Equal(t, "B.E- SOMETHING ELSE", CanonicalBranch("B.E- SOMETHING ELSE"))
}

func TestShortBranch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CSE", ShortBranch("B.E- COMPUTER SCIENCE AND ENGG."))
	assert.Equal(t, "AIML", ShortBranch("B.E- ARTIFICIAL INTELLIGENCE AND MACHINE LEARNING"))
	assert.Equal(t, "unknown", ShortBranch("unknown"))
}

func TestBranchMappingRoundTrip(t *testing.T) {
	t.Parallel()

	for _, code := range DepartmentCodes {
		canonical := CanonicalBranch(code)
		assert.NotEqual(t, code, canonical, "every department code must map")
		assert.Equal(t, code, ShortBranch(canonical))
	}
}

func TestBranchFromRoll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		roll   string
		want   string
		wantOK bool
	}{
		{"160123737141", "IT", true},
		{"160123733001", "CSE", true},
		{"160123729045", "AIML", true},
		{"160123805010", "BIO-TECH", true},
		{"160123999001", "", false}, // unknown programme code
		{"16012373", "", false},     // too short
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := BranchFromRoll(tt.roll)
		assert.Equal(t, tt.wantOK, ok, "roll %q", tt.roll)
		assert.Equal(t, tt.want, got, "roll %q", tt.roll)
	}
}

func TestDefaultStudentPassword(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "160123737141P", DefaultStudentPassword("160123737141"))
}

func TestIsValidProjectType(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidProjectType("mini-I"))
	assert.True(t, IsValidProjectType("mini-II"))
	assert.True(t, IsValidProjectType("major"))
	assert.False(t, IsValidProjectType("mini-III"))
	assert.False(t, IsValidProjectType(""))
	assert.False(t, IsValidProjectType("Major"))
}
