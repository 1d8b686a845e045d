package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-planner/backend/internal/application/adapter/mocks"
	"github.com/finance-planner/backend/internal/application/usecase/analytics"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetSummary_ComputesBalanceAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)
	cache := mocks.NewMockAnalyticsCache(ctrl)

	filter := entity.AnalyticsFilter{UserID: uuid.New(), Category: "Food"}

	cache.EXPECT().Get(gomock.Any(), filter.UserID, "summary:-:-:Food").Return(nil, false, nil)
	repo.EXPECT().GetSummary(gomock.Any(), filter).Return(&entity.Summary{Income: d("1000"), Expense: d("250.75")}, nil)

	var stored []byte
	cache.EXPECT().Set(gomock.Any(), filter.UserID, "summary:-:-:Food", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, v []byte) error {
			stored = v
			return nil
		})

	uc := analytics.NewGetSummaryUseCase(repo, cache)
	summary, err := uc.Execute(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, "749.25", summary.Balance.String())

	// Second call is answered from the cache.
	cache.EXPECT().Get(gomock.Any(), filter.UserID, "summary:-:-:Food").Return(stored, true, nil)

	again, err := uc.Execute(context.Background(), filter)
	require.NoError(t, err)
	assert.True(t, again.Balance.Equal(summary.Balance))
	assert.True(t, again.Income.Equal(d("1000")))
}

func TestGetSummary_CacheErrorFallsBackToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)
	cache := mocks.NewMockAnalyticsCache(ctrl)

	filter := entity.AnalyticsFilter{UserID: uuid.New()}
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis: connection refused"))
	repo.EXPECT().GetSummary(gomock.Any(), filter).Return(&entity.Summary{Income: d("10"), Expense: d("0")}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

	summary, err := analytics.NewGetSummaryUseCase(repo, cache).Execute(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, "10", summary.Balance.String())
}

func TestGetSummary_RejectsInvertedRange(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := analytics.NewGetSummaryUseCase(nil, nil).Execute(context.Background(), entity.AnalyticsFilter{
		UserID:    uuid.New(),
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)
}

func TestGetCategorySummary_ZeroFillsAndOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)
	userID := uuid.New()

	repo.EXPECT().ListCategories(gomock.Any(), userID).Return([]string{"Travel", "Food", "Salary", "Books"}, nil)
	repo.EXPECT().GetExpenseByCategory(gomock.Any(), gomock.Any()).Return(map[string]decimal.Decimal{
		"Food":   d("120.50"),
		"Travel": d("300"),
	}, nil)

	rows, err := analytics.NewGetCategorySummaryUseCase(repo, nil).Execute(context.Background(), entity.AnalyticsFilter{UserID: userID})
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, "Travel", rows[0].Category)
	assert.Equal(t, "Food", rows[1].Category)
	assert.Equal(t, "Books", rows[2].Category)
	assert.True(t, rows[2].Amount.IsZero())
	assert.Equal(t, "Salary", rows[3].Category)
	assert.True(t, rows[3].Amount.IsZero())
}

func TestGetMonthlyTrend_GroupsByYearMonthType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)
	userID := uuid.New()

	tx := func(date string, kind entity.TransactionType, amount string) *entity.Transaction {
		day, err := entity.ParseDate(date)
		require.NoError(t, err)
		return &entity.Transaction{Date: day, Type: kind, Amount: d(amount)}
	}

	repo.EXPECT().ListForTrend(gomock.Any(), gomock.Any()).Return([]*entity.Transaction{
		tx("2024-02-03", entity.TransactionTypeExpense, "10"),
		tx("2023-12-31", entity.TransactionTypeIncome, "500"),
		tx("2024-02-20", entity.TransactionTypeExpense, "5.25"),
		tx("2024-02-01", entity.TransactionTypeIncome, "1000"),
		tx("2024-01-15", entity.TransactionTypeExpense, "42"),
	}, nil)

	points, err := analytics.NewGetMonthlyTrendUseCase(repo, nil).Execute(context.Background(), entity.AnalyticsFilter{UserID: userID})
	require.NoError(t, err)

	want := []struct {
		year, month int
		kind        entity.TransactionType
		total       string
	}{
		{2023, 12, entity.TransactionTypeIncome, "500"},
		{2024, 1, entity.TransactionTypeExpense, "42"},
		{2024, 2, entity.TransactionTypeExpense, "15.25"},
		{2024, 2, entity.TransactionTypeIncome, "1000"},
	}
	require.Len(t, points, len(want))
	for i, w := range want {
		assert.Equal(t, w.year, points[i].Year)
		assert.Equal(t, w.month, points[i].Month)
		assert.Equal(t, w.kind, points[i].Type)
		assert.Equal(t, w.total, points[i].Total.String(), "row %d", i)
	}
}

func TestGetCategorySummary_IgnoresCategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnalyticsRepository(ctrl)
	userID := uuid.New()

	repo.EXPECT().ListCategories(gomock.Any(), userID).Return([]string{"Food", "Travel"}, nil)
	repo.EXPECT().GetExpenseByCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.AnalyticsFilter) (map[string]decimal.Decimal, error) {
			assert.Empty(t, f.Category)
			return map[string]decimal.Decimal{"Food": d("12"), "Travel": d("40")}, nil
		})

	rows, err := analytics.NewGetCategorySummaryUseCase(repo, nil).Execute(context.Background(), entity.AnalyticsFilter{
		UserID:   userID,
		Category: "Food",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "40", rows[0].Amount.String())
	assert.Equal(t, "12", rows[1].Amount.String())
}
