package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// GetCategorySummaryUseCase lists expense totals for every category the owner uses.
type GetCategorySummaryUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
	cache         adapter.AnalyticsCache
}

// NewGetCategorySummaryUseCase creates a new GetCategorySummaryUseCase instance.
func NewGetCategorySummaryUseCase(analyticsRepo adapter.AnalyticsRepository, cache adapter.AnalyticsCache) *GetCategorySummaryUseCase {
	return &GetCategorySummaryUseCase{
		analyticsRepo: analyticsRepo,
		cache:         cache,
	}
}

// Execute returns one row per known category. Categories with no expenses in
// the range report zero. Rows are ordered by amount desc, then name.
func (uc *GetCategorySummaryUseCase) Execute(ctx context.Context, filter entity.AnalyticsFilter) ([]entity.CategoryTotal, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	filter.Category = ""

	return cached(ctx, uc.cache, filter, "category-summary", func() ([]entity.CategoryTotal, error) {
		categories, err := uc.analyticsRepo.ListCategories(ctx, filter.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}

		totals, err := uc.analyticsRepo.GetExpenseByCategory(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get category totals: %w", err)
		}

		result := make([]entity.CategoryTotal, 0, len(categories))
		for _, category := range categories {
			amount, ok := totals[category]
			if !ok {
				amount = decimal.Zero
			}
			result = append(result, entity.CategoryTotal{Category: category, Amount: amount})
		}

		sort.SliceStable(result, func(i, j int) bool {
			if c := result[i].Amount.Cmp(result[j].Amount); c != 0 {
				return c > 0
			}
			return result[i].Category < result[j].Category
		})
		return result, nil
	})
}
