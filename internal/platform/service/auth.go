package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/store"
	"github.com/openintel/mdip/pkg/cryptox"
)

// AuthService implements registration and login against the users table.
// Validation failures, duplicates and bad credentials come back as
// (ok=false, message); only store-level failures surface as errors.
type AuthService struct {
	Store store.Store
}

// Register creates a new user. The duplicate check runs before validation so
// an existing username wins over a malformed one, matching the message order
// callers display. An empty role defaults to "user".
func (s *AuthService) Register(ctx context.Context, username, password, role string) (bool, string, error) {
	_, err := s.Store.Users().GetByUsername(ctx, username)
	switch {
	case err == nil:
		return false, fmt.Sprintf("Username '%s' already exists.", username), nil
	case !errors.Is(err, store.ErrNotFound):
		return false, "", err
	}

	if ok, msg := domain.ValidateUsername(username); !ok {
		return false, msg, nil
	}
	if ok, msg := domain.ValidatePassword(password); !ok {
		return false, msg, nil
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return false, "", err
	}

	if role == "" {
		role = domain.DefaultRole
	}

	_, err = s.Store.Users().Create(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with a concurrent registration of the same name.
		return false, fmt.Sprintf("Username '%s' already exists.", username), nil
	}
	if err != nil {
		return false, "", err
	}

	return true, fmt.Sprintf("User '%s' registered successfully!", username), nil
}

// Login checks the supplied credentials. An unknown username and a wrong
// password produce distinct messages; hash verification failures of any kind
// (including malformed stored hashes) read as a bad password.
func (s *AuthService) Login(ctx context.Context, username, password string) (bool, string, error) {
	user, err := s.Store.Users().GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return false, "Username not found.", nil
	}
	if err != nil {
		return false, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return false, "Invalid password.", nil
	}

	return true, fmt.Sprintf("Welcome, %s!", user.Username), nil
}

// User fetches a registered user by username, for callers that need the role
// after a successful login.
func (s *AuthService) User(ctx context.Context, username string) (domain.User, error) {
	return s.Store.Users().GetByUsername(ctx, username)
}
