package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// RecurringTransactionRepository defines the interface for recurring rule persistence operations.
type RecurringTransactionRepository interface {
	// Create stores a new rule.
	Create(ctx context.Context, rule *entity.RecurringTransaction) error

	// FindByID retrieves a rule by ID for its owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringTransaction, error)

	// FindByUser lists an owner's rules ordered by start date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// ListActive returns every rule, across owners, whose window contains asOf:
	// start_date <= asOf AND (end_date IS NULL OR end_date >= asOf).
	ListActive(ctx context.Context, asOf time.Time) ([]*entity.RecurringTransaction, error)

	// Advance moves a rule's last run date from seen to lastRunDate. It returns
	// ErrRecurringNotFound when the rule no longer exists or its last run date
	// is no longer seen, i.e. another runner already advanced it.
	Advance(ctx context.Context, id uuid.UUID, seen, lastRunDate time.Time) error

	// Delete removes a rule owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
