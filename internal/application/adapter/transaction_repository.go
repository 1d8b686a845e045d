// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger entry persistence operations.
// Every lookup is scoped by owner; entries owned by someone else behave as missing.
type TransactionRepository interface {
	// Append inserts a new ledger entry.
	Append(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves an entry by ID for its owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves entries matching the filter, newest first, with pagination.
	FindByFilter(ctx context.Context, filter entity.TransactionFilter) (*entity.TransactionListResult, error)

	// Update persists user edits to an existing entry.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes an entry owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
