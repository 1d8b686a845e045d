// Package analytics contains ledger aggregation use cases.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func cacheKey(kind string, filter entity.AnalyticsFilter) string {
	start, end := "-", "-"
	if filter.StartDate != nil {
		start = filter.StartDate.Format(entity.DateLayout)
	}
	if filter.EndDate != nil {
		end = filter.EndDate.Format(entity.DateLayout)
	}
	return fmt.Sprintf("%s:%s:%s:%s", kind, start, end, filter.Category)
}

// cached serves load's result from the cache when possible. Cache errors
// degrade to a direct load.
func cached[T any](
	ctx context.Context,
	cache adapter.AnalyticsCache,
	filter entity.AnalyticsFilter,
	kind string,
	load func() (T, error),
) (T, error) {
	if cache == nil {
		return load()
	}

	key := cacheKey(kind, filter)
	if raw, ok, err := cache.Get(ctx, filter.UserID, key); err != nil {
		slog.WarnContext(ctx, "analytics cache read failed", "key", key, "error", err)
	} else if ok {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, nil
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := cache.Set(ctx, filter.UserID, key, raw); err != nil {
			slog.WarnContext(ctx, "analytics cache write failed", "key", key, "error", err)
		}
	}
	return value, nil
}

func validateRange(filter entity.AnalyticsFilter) error {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
