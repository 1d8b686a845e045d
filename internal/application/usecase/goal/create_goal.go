// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	TargetDate   *time.Time // Optional
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateGoal(title, input.TargetAmount, input.SavedAmount); err != nil {
		return nil, err
	}

	goal := entity.NewSavingsGoal(input.UserID, title, input.TargetAmount, input.SavedAmount, input.TargetDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func validateGoal(title string, target, saved decimal.Decimal) error {
	if title == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalTitleRequired,
			"title is required",
			domainerror.ErrGoalTitleRequired,
		)
	}
	if len(title) > entity.MaxTitleLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			fmt.Sprintf("title must not exceed %d characters", entity.MaxTitleLength),
			nil,
		)
	}
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if saved.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidSavedAmount,
			"saved amount must not be negative",
			domainerror.ErrInvalidSavedAmount,
		)
	}
	return nil
}

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
