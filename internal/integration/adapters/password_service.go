package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

const (
	// DefaultBcryptCost is the cost factor used in production.
	DefaultBcryptCost = 12
	// minPasswordLength is the minimum required password length.
	minPasswordLength = 8
)

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new password service. A cost outside bcrypt's
// range uses DefaultBcryptCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// ValidatePasswordStrength validates if a password meets minimum requirements.
// bcrypt only considers the first 72 bytes, so longer passwords are rejected.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength || len(password) > 72 {
		return domainerror.ErrWeakPassword
	}
	return nil
}
