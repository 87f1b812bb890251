package common

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

const MaxContentLength = 10000

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return NewValidationError("username", "must be between 3 and 50 characters")
	}

	if !usernameRegex.MatchString(username) {
		return NewValidationError("username", "can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return NewValidationError("password", "must be at least 6 characters long")
	}

	// bcrypt only looks at the first 72 bytes
	if len(password) > 72 {
		return NewValidationError("password", "is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return NewValidationError("email", "is required")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("email", "invalid email format")
	}

	return nil
}

func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "message content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return NewValidationError("content", "message content is too long")
	}
	return nil
}
