package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category string
	Type     entity.TransactionType
	Date     time.Time
	Note     string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.AnalyticsCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, cache adapter.AnalyticsCache) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	fields := entryFields{
		Title:    input.Title,
		Amount:   input.Amount,
		Category: input.Category,
		Type:     input.Type,
		Date:     input.Date,
		Note:     input.Note,
	}
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		fields.Title,
		fields.Amount,
		fields.Category,
		fields.Type,
		fields.Date,
		fields.Note,
	)

	if err := uc.transactionRepo.Append(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateAnalytics(ctx, uc.cache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
