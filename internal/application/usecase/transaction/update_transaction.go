package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Amount        *decimal.Decimal
	Category      *string
	Type          *entity.TransactionType
	Date          *time.Time
	Note          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.AnalyticsCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, cache adapter.AnalyticsCache) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	fields := entryFields{
		Title:    transaction.Title,
		Amount:   transaction.Amount,
		Category: transaction.Category,
		Type:     transaction.Type,
		Date:     transaction.Date,
		Note:     transaction.Note,
	}
	if input.Title != nil {
		fields.Title = *input.Title
	}
	if input.Amount != nil {
		fields.Amount = *input.Amount
	}
	if input.Category != nil {
		fields.Category = *input.Category
	}
	if input.Type != nil {
		fields.Type = *input.Type
	}
	if input.Date != nil {
		fields.Date = *input.Date
	}
	if input.Note != nil {
		fields.Note = *input.Note
	}

	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	transaction.Title = fields.Title
	transaction.Amount = fields.Amount
	transaction.Category = fields.Category
	transaction.Type = fields.Type
	transaction.Date = entity.DateOf(fields.Date)
	transaction.Note = fields.Note
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateAnalytics(ctx, uc.cache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
