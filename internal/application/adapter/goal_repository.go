package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a goal by its ID for its owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes a goal owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
