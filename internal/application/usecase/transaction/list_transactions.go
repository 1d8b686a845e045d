package transaction

import (
	"context"
	"fmt"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// Pagination bounds for listing.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListTransactionsUseCase lists the caller's entries with filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute validates the filter, clamps pagination and runs the query.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, filter entity.TransactionFilter) (*entity.TransactionListResult, error) {
	if err := validateFilter(&filter); err != nil {
		return nil, err
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return result, nil
}

func validateFilter(filter *entity.TransactionFilter) error {
	if filter.Type != "" && !filter.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'Income' or 'Expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"end date must not be before start date",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}
