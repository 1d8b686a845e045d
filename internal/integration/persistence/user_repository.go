package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := DBFromContext(ctx, r.db).Create(model.FromEntity(user)).Error; err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "LOWER(email) = LOWER(?)", email)
}

// FindByIdentifier retrieves a user whose username or email matches identifier.
func (r *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return r.first(ctx, "LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", identifier, identifier)
}

func (r *userRepository) first(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userModel model.UserModel
	result := DBFromContext(ctx, r.db).Where(query, args...).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return userModel.ToEntity(), nil
}

// Update updates an existing user in the database.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := DBFromContext(ctx, r.db).Save(model.FromEntity(user))
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// Delete removes a user together with their ledger, rules, goals and tokens.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return DBFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&model.TransactionModel{},
			&model.RecurringTransactionModel{},
			&model.GoalModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to delete user data: %w", err)
			}
		}

		result := tx.Delete(&model.UserModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrUserNotFound
		}
		return nil
	})
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

// ExistsByUsername checks if a user with the given username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "LOWER(username) = LOWER(?)", username)
}

func (r *userRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	result := DBFromContext(ctx, r.db).Model(&model.UserModel{}).Where(query, args...).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to count users: %w", result.Error)
	}
	return count > 0, nil
}
