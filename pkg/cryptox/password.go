package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing. Raising it
// invalidates nothing (the cost travels inside each hash) but slows new
// registrations.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
// Each call generates a fresh random salt, so hashing the same password
// twice yields two different strings that both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash
// using bcrypt's own constant-time comparison. It returns an error for a
// mismatch or a malformed hash string; callers that only need a boolean
// should treat any error as "does not match".
func VerifyPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}
