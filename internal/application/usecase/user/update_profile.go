package user

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/application/usecase/auth"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// MaxCurrencyLength bounds the preferred currency symbol or code, in runes.
const MaxCurrencyLength = 10

// UpdateProfileInput holds the fields to change. Nil fields are left as is.
type UpdateProfileInput struct {
	UserID             uuid.UUID
	Email              *string
	PreferredCurrency  *string
	Theme              *entity.Theme
	RecurringReminders *bool
}

// UpdateProfileUseCase handles partial profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the update and returns the stored profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	user, err := loadUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !auth.IsValidEmail(email) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
		}
		if email != strings.ToLower(user.Email) {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email existence: %w", err)
			}
			if exists {
				return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", domainerror.ErrEmailAlreadyExists)
			}
		}
		user.Email = email
	}

	if input.PreferredCurrency != nil {
		currency := strings.TrimSpace(*input.PreferredCurrency)
		if currency == "" || utf8.RuneCountInString(currency) > MaxCurrencyLength {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCurrency, "preferred currency must be 1-10 characters", domainerror.ErrInvalidCurrency)
		}
		user.PreferredCurrency = currency
	}

	if input.Theme != nil {
		if !input.Theme.IsValid() {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidTheme, "theme must be light or dark", domainerror.ErrInvalidTheme)
		}
		user.Theme = *input.Theme
	}

	if input.RecurringReminders != nil {
		user.RecurringReminders = *input.RecurringReminders
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
