package persistence_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

func TestTransactionRepository_FilterAndPaging(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewTransactionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedEntry(t, db, alice.ID, "Salary", "Work", entity.TransactionTypeIncome, "3000", "2024-03-01")
	seedEntry(t, db, alice.ID, "Groceries", "Food", entity.TransactionTypeExpense, "80.25", "2024-03-05")
	seedEntry(t, db, alice.ID, "Dinner out", "Food", entity.TransactionTypeExpense, "45", "2024-03-20")
	seedEntry(t, db, alice.ID, "Bus pass", "Transport", entity.TransactionTypeExpense, "30", "2024-04-02")
	seedEntry(t, db, bob.ID, "Groceries", "Food", entity.TransactionTypeExpense, "10", "2024-03-05")

	t.Run("owner scope and ordering", func(t *testing.T) {
		res, err := repo.FindByFilter(ctx, entity.TransactionFilter{UserID: alice.ID, Limit: 50})
		require.NoError(t, err)
		assert.EqualValues(t, 4, res.Total)
		assert.Equal(t, "Bus pass", res.Transactions[0].Title)
		assert.Equal(t, "Salary", res.Transactions[3].Title)
	})

	t.Run("category type and dates", func(t *testing.T) {
		start, end := mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31")
		res, err := repo.FindByFilter(ctx, entity.TransactionFilter{
			UserID:    alice.ID,
			Category:  "Food",
			Type:      entity.TransactionTypeExpense,
			StartDate: &start,
			EndDate:   &end,
			Limit:     50,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, res.Total)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		res, err := repo.FindByFilter(ctx, entity.TransactionFilter{UserID: alice.ID, Search: "DINNER", Limit: 50})
		require.NoError(t, err)
		require.Len(t, res.Transactions, 1)
		assert.Equal(t, "Dinner out", res.Transactions[0].Title)
	})

	t.Run("paging keeps total", func(t *testing.T) {
		res, err := repo.FindByFilter(ctx, entity.TransactionFilter{UserID: alice.ID, Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 4, res.Total)
		assert.Len(t, res.Transactions, 2)
	})
}

func TestTransactionRepository_UpdateAndDeleteAreOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewTransactionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	entry := seedEntry(t, db, alice.ID, "Coffee", "Food", entity.TransactionTypeExpense, "3.50", "2024-03-05")

	entry.Title = "Espresso"
	entry.Note = "double"
	require.NoError(t, repo.Update(ctx, entry))

	got, err := repo.FindByID(ctx, entry.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Espresso", got.Title)
	assert.Equal(t, "double", got.Note)
	assert.Equal(t, "3.5", got.Amount.String())

	stranger := uuid.New()
	_, err = repo.FindByID(ctx, entry.ID, stranger)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

	foreign := *entry
	foreign.UserID = stranger
	assert.ErrorIs(t, repo.Update(ctx, &foreign), domainerror.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, entry.ID, stranger), domainerror.ErrTransactionNotFound)

	require.NoError(t, repo.Delete(ctx, entry.ID, alice.ID))
	_, err = repo.FindByID(ctx, entry.ID, alice.ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
}

func TestTxManager_JoinsOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewTransactionRepository(db)
	txm := persistence.NewTxManager(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")

	err := txm.WithinTransaction(ctx, func(outer context.Context) error {
		if err := repo.Append(outer, entity.NewTransaction(alice.ID, "One", d("1"), "X", entity.TransactionTypeExpense, mustDate(t, "2024-01-01"), "")); err != nil {
			return err
		}
		return txm.WithinTransaction(outer, func(inner context.Context) error {
			if err := repo.Append(inner, entity.NewTransaction(alice.ID, "Two", d("2"), "X", entity.TransactionTypeExpense, mustDate(t, "2024-01-01"), "")); err != nil {
				return err
			}
			return domainerror.ErrTransactionNotFound
		})
	})
	require.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

	res, err := repo.FindByFilter(ctx, entity.TransactionFilter{UserID: alice.ID, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Total)
}
