package analytics

import (
	"context"
	"fmt"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// GetSummaryUseCase returns income, expense and balance for a filter.
type GetSummaryUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
	cache         adapter.AnalyticsCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(analyticsRepo adapter.AnalyticsRepository, cache adapter.AnalyticsCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		analyticsRepo: analyticsRepo,
		cache:         cache,
	}
}

// Execute computes the summary. Balance is income minus expense.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, filter entity.AnalyticsFilter) (*entity.Summary, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, filter, "summary", func() (*entity.Summary, error) {
		summary, err := uc.analyticsRepo.GetSummary(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get summary: %w", err)
		}
		summary.Balance = summary.Income.Sub(summary.Expense)
		return summary, nil
	})
}
