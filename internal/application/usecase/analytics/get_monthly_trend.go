package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// GetMonthlyTrendUseCase groups the owner's ledger by year, month and type.
type GetMonthlyTrendUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
	cache         adapter.AnalyticsCache
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(analyticsRepo adapter.AnalyticsRepository, cache adapter.AnalyticsCache) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		analyticsRepo: analyticsRepo,
		cache:         cache,
	}
}

type trendKey struct {
	year  int
	month int
	kind  entity.TransactionType
}

// Execute returns totals ordered by year, month, then type.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, filter entity.AnalyticsFilter) ([]entity.MonthlyTrendPoint, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, filter, "monthly-trend", func() ([]entity.MonthlyTrendPoint, error) {
		transactions, err := uc.analyticsRepo.ListForTrend(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to load trend data: %w", err)
		}
		return groupByMonth(transactions), nil
	})
}

func groupByMonth(transactions []*entity.Transaction) []entity.MonthlyTrendPoint {
	totals := make(map[trendKey]decimal.Decimal)
	for _, t := range transactions {
		k := trendKey{year: t.Date.Year(), month: int(t.Date.Month()), kind: t.Type}
		totals[k] = totals[k].Add(t.Amount)
	}

	points := make([]entity.MonthlyTrendPoint, 0, len(totals))
	for k, total := range totals {
		points = append(points, entity.MonthlyTrendPoint{Year: k.year, Month: k.month, Type: k.kind, Total: total})
	}

	sort.Slice(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Type < b.Type
	})
	return points
}
