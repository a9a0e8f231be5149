package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 50)},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// bcrypt hashes are self-describing: $2a$<cost>$<salt+digest>
			require.True(t, strings.HasPrefix(hash, "$2a$10$"),
				"hash should carry the fixed cost factor")
			require.NotEqual(t, tt.password, hash)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, err := HashPassword(password)
	require.NoError(t, err)

	// Each hash differs due to a fresh salt, yet both verify.
	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, VerifyPassword(password, hash1))
	require.NoError(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Correct1!")
	require.NoError(t, err)

	t.Run("matching password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("Correct1!", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		require.Error(t, VerifyPassword("Wrong1!", hash))
	})

	t.Run("empty password fails against real hash", func(t *testing.T) {
		require.Error(t, VerifyPassword("", hash))
	})

	t.Run("malformed hash fails closed", func(t *testing.T) {
		require.Error(t, VerifyPassword("Correct1!", "not-a-bcrypt-hash"))
		require.Error(t, VerifyPassword("Correct1!", ""))
	})
}
