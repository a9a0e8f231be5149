package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		ok       bool
		message  string
	}{
		{"too short", "ab", false, "Username must be at least 3 characters long."},
		{"too long", strings.Repeat("a", 21), false, "Username must be at most 20 characters long."},
		{"contains space", "ab c", false, "There can be no spaces in your username."},
		{"letters only", "abc", true, "Valid username."},
		{"mixed letters and digits", "user42", true, "Valid username."},
		{"digits only", "12345", false, "The username must contain alphanumeric characters."},
		{"punctuation only", "___", false, "The username must contain alphanumeric characters."},
		{"exactly 3 chars", "abc", true, "Valid username."},
		{"exactly 20 chars", strings.Repeat("a", 20), true, "Valid username."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateUsername(tt.username)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.message, msg)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	composite := "Password must contain uppercase and lowercase letters, at least one number, and a special character."

	tests := []struct {
		name     string
		password string
		ok       bool
		message  string
	}{
		{"too short", "Ab1!", false, "Password must be at least 6 characters long."},
		{"too long", "A1!" + strings.Repeat("a", 48), false, "Password must be at most 50 characters long."},
		{"contains space", "Abc def1!", false, "There can be no spaces in your password."},
		{"all classes present", "Abcd1!", true, "Valid password."},
		{"missing every class", "abcdef", false, composite},
		{"missing special", "Abcdef1", false, composite},
		{"missing digit", "Abcdef!", false, composite},
		{"missing upper", "abcde1!", false, composite},
		{"missing lower", "ABCDE1!", false, composite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidatePassword(tt.password)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.message, msg)
		})
	}
}
