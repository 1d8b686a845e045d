package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// AnalyticsRepository aggregates an owner's ledger.
type AnalyticsRepository interface {
	// GetSummary returns income and expense totals matching the filter.
	GetSummary(ctx context.Context, filter entity.AnalyticsFilter) (*entity.Summary, error)

	// ListCategories returns every distinct category the owner has used, ignoring dates.
	ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error)

	// GetExpenseByCategory returns expense totals per category within the filter.
	// Categories without expenses in range are absent.
	GetExpenseByCategory(ctx context.Context, filter entity.AnalyticsFilter) (map[string]decimal.Decimal, error)

	// ListForTrend returns the entries matching the filter, ordered by date.
	ListForTrend(ctx context.Context, filter entity.AnalyticsFilter) ([]*entity.Transaction, error)
}
