package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListRecurringInput represents the input for listing recurring rules.
type ListRecurringInput struct {
	UserID uuid.UUID
}

// ListRecurringOutput represents the output of listing recurring rules.
type ListRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// ListRecurringUseCase lists the caller's recurring rules.
type ListRecurringUseCase struct {
	ruleRepo adapter.RecurringTransactionRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(ruleRepo adapter.RecurringTransactionRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute returns the owner's rules ordered by start date.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	rules, err := uc.ruleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	return &ListRecurringOutput{
		Recurring: rules,
	}, nil
}
