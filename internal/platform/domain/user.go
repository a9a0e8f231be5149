package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt encoded, never the plaintext
	Role         string
	CreatedAt    time.Time
}

// DefaultRole is assigned to self-registered users.
const DefaultRole = "user"

// passwordSpecials is the fixed punctuation set a password must draw from.
const passwordSpecials = `!@#$%^&*()_+=-{}[]:;"'<>,.?/`

// ValidateUsername checks a username against the registration policy.
// The checks run in a fixed order and the first failure selects the message.
// A username of letters only passes; the trailing message is kept verbatim
// even though the check never actually requires digits.
func ValidateUsername(username string) (bool, string) {
	if utf8.RuneCountInString(username) < 3 {
		return false, "Username must be at least 3 characters long."
	}
	if utf8.RuneCountInString(username) > 20 {
		return false, "Username must be at most 20 characters long."
	}
	if strings.Contains(username, " ") {
		return false, "There can be no spaces in your username."
	}
	if strings.ContainsFunc(username, isASCIILetter) {
		return true, "Valid username."
	}
	return false, "The username must contain alphanumeric characters."
}

// ValidatePassword checks a password against the registration policy. All four
// character classes (lower, upper, digit, special) must be present at once.
func ValidatePassword(password string) (bool, string) {
	if utf8.RuneCountInString(password) < 6 {
		return false, "Password must be at least 6 characters long."
	}
	if utf8.RuneCountInString(password) > 50 {
		return false, "Password must be at most 50 characters long."
	}
	if strings.Contains(password, " ") {
		return false, "There can be no spaces in your password."
	}
	if strings.ContainsFunc(password, isASCIILower) &&
		strings.ContainsFunc(password, isASCIIUpper) &&
		strings.ContainsFunc(password, isASCIIDigit) &&
		strings.ContainsAny(password, passwordSpecials) {
		return true, "Valid password."
	}
	return false, "Password must contain uppercase and lowercase letters, at least one number, and a special character."
}

func isASCIILetter(r rune) bool { return isASCIILower(r) || isASCIIUpper(r) }
func isASCIILower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isASCIIUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isASCIIDigit(r rune) bool  { return r >= '0' && r <= '9' }
