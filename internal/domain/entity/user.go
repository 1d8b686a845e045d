package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme represents the user's preferred UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether the theme is supported.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// DefaultCurrency is the currency symbol assigned to new users.
const DefaultCurrency = "₹"

// User represents a user in the Finance Planner system.
type User struct {
	ID                 uuid.UUID
	Username           string
	Email              string
	PasswordHash       string
	PreferredCurrency  string
	Theme              Theme
	RecurringReminders bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default preferences.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Username:           username,
		Email:              email,
		PasswordHash:       passwordHash,
		PreferredCurrency:  DefaultCurrency,
		Theme:              ThemeLight,
		RecurringReminders: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
