package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

func TestAnalyticsRepository_Aggregates(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewAnalyticsRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedEntry(t, db, alice.ID, "Salary", "Work", entity.TransactionTypeIncome, "3000", "2024-03-01")
	seedEntry(t, db, alice.ID, "Groceries", "Food", entity.TransactionTypeExpense, "80.25", "2024-03-05")
	seedEntry(t, db, alice.ID, "Dinner", "Food", entity.TransactionTypeExpense, "45.50", "2024-03-20")
	seedEntry(t, db, alice.ID, "Flight", "Travel", entity.TransactionTypeExpense, "400", "2024-01-10")
	seedEntry(t, db, bob.ID, "Groceries", "Food", entity.TransactionTypeExpense, "999", "2024-03-05")

	t.Run("summary", func(t *testing.T) {
		summary, err := repo.GetSummary(ctx, entity.AnalyticsFilter{UserID: alice.ID})
		require.NoError(t, err)
		assert.Equal(t, "3000", summary.Income.String())
		assert.Equal(t, "525.75", summary.Expense.String())
	})

	t.Run("summary with no rows is zero", func(t *testing.T) {
		summary, err := repo.GetSummary(ctx, entity.AnalyticsFilter{UserID: alice.ID, Category: "Nothing"})
		require.NoError(t, err)
		assert.True(t, summary.Income.IsZero())
		assert.True(t, summary.Expense.IsZero())
	})

	t.Run("categories ignore dates", func(t *testing.T) {
		categories, err := repo.ListCategories(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Food", "Travel", "Work"}, categories)
	})

	t.Run("expense by category within range", func(t *testing.T) {
		start, end := mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31")
		totals, err := repo.GetExpenseByCategory(ctx, entity.AnalyticsFilter{UserID: alice.ID, StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Len(t, totals, 1)
		assert.Equal(t, "125.75", totals["Food"].String())
	})

	t.Run("trend rows are ordered by date", func(t *testing.T) {
		rows, err := repo.ListForTrend(ctx, entity.AnalyticsFilter{UserID: alice.ID})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "Flight", rows[0].Title)
	})
}
