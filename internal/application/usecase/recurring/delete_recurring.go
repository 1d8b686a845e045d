package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for recurring rule deletion.
type DeleteRecurringInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteRecurringUseCase deletes a recurring rule. Entries it already produced are kept.
type DeleteRecurringUseCase struct {
	ruleRepo adapter.RecurringTransactionRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(ruleRepo adapter.RecurringTransactionRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) error {
	if err := uc.ruleRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringNotFound,
				"recurring transaction not found",
				domainerror.ErrRecurringNotFound,
			)
		}
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	return nil
}
