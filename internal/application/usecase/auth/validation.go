// Package auth contains authentication-related use cases.
package auth

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)
)

// genericResetMessage is returned whether or not the email is registered.
const genericResetMessage = "If an account with that email exists, we have sent a password reset link"

// IsValidEmail validates email format using a simple regex.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
