package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/store"
	"github.com/openintel/mdip/internal/platform/store/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s := sqlite.NewStore("file:" + dbPath + "?_busy_timeout=5000")
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAuthService_Register(t *testing.T) {
	auth := &AuthService{Store: newTestStore(t)}
	ctx := context.Background()

	t.Run("valid registration succeeds once", func(t *testing.T) {
		ok, msg, err := auth.Register(ctx, "alice", "Str0ng!pw", "")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "User 'alice' registered successfully!", msg)

		user, err := auth.User(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, domain.DefaultRole, user.Role)
		require.NotEqual(t, "Str0ng!pw", user.PasswordHash, "plaintext must never be stored")
	})

	t.Run("duplicate username fails regardless of password", func(t *testing.T) {
		ok, msg, err := auth.Register(ctx, "alice", "Other1!pw", "")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, "Username 'alice' already exists.", msg)
	})

	t.Run("invalid username reports the validator message", func(t *testing.T) {
		ok, msg, err := auth.Register(ctx, "ab", "Str0ng!pw", "")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, "Username must be at least 3 characters long.", msg)
	})

	t.Run("invalid password reports the validator message", func(t *testing.T) {
		ok, msg, err := auth.Register(ctx, "bob", "weak", "")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, "Password must be at least 6 characters long.", msg)
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		ok, _, err := auth.Register(ctx, "carol", "Str0ng!pw", "admin")
		require.NoError(t, err)
		require.True(t, ok)

		user, err := auth.User(ctx, "carol")
		require.NoError(t, err)
		require.Equal(t, "admin", user.Role)
	})
}

func TestAuthService_Login(t *testing.T) {
	auth := &AuthService{Store: newTestStore(t)}
	ctx := context.Background()

	ok, _, err := auth.Register(ctx, "alice", "Str0ng!pw", "")
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("correct credentials succeed", func(t *testing.T) {
		ok, msg, err := auth.Login(ctx, "alice", "Str0ng!pw")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Welcome, alice!", msg)
	})

	t.Run("unknown username distinguishes from bad password", func(t *testing.T) {
		ok, msg, err := auth.Login(ctx, "nobody", "Str0ng!pw")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, "Username not found.", msg)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		ok, msg, err := auth.Login(ctx, "alice", "Wr0ng!pw")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, "Invalid password.", msg)
	})
}
