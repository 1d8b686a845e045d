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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	if err := DBFromContext(ctx, r.db).Create(model.GoalFromEntity(goal)).Error; err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// FindByID retrieves a goal by its ID for its owner.
func (r *goalRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.GoalModel
	result := DBFromContext(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to find goal: %w", result.Error)
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var goalModels []model.GoalModel
	result := DBFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list goals: %w", result.Error)
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	result := DBFromContext(ctx, r.db).
		Model(&model.GoalModel{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]any{
			"title":         goal.Title,
			"target_amount": goal.TargetAmount,
			"saved_amount":  goal.SavedAmount,
			"status":        string(goal.Status),
			"target_date":   goal.TargetDate,
			"updated_at":    goal.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal owned by userID.
func (r *goalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := DBFromContext(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.GoalModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
