package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

func TestUserRepository_CaseInsensitiveLookups(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewUserRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "Alice")

	byName, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := repo.FindByIdentifier(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	exists, err := repo.ExistsByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}

func TestUserRepository_UpdatePreferences(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewUserRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")

	alice.Theme = entity.ThemeDark
	alice.PreferredCurrency = "€"
	alice.RecurringReminders = false
	require.NoError(t, repo.Update(ctx, alice))

	got, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, got.Theme)
	assert.Equal(t, "€", got.PreferredCurrency)
	assert.False(t, got.RecurringReminders)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := persistence.NewUserRepository(db)
	ledger := persistence.NewTransactionRepository(db)
	rules := persistence.NewRecurringTransactionRepository(db)
	goals := persistence.NewGoalRepository(db)
	tokens := persistence.NewTokenRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedEntry(t, db, alice.ID, "Rent", "Housing", entity.TransactionTypeExpense, "900", "2024-01-01")
	kept := seedEntry(t, db, bob.ID, "Rent", "Housing", entity.TransactionTypeExpense, "700", "2024-01-01")
	require.NoError(t, rules.Create(ctx, newRule(t, alice.ID, entity.FrequencyMonthly, "2024-01-01", nil)))
	require.NoError(t, goals.Create(ctx, entity.NewSavingsGoal(alice.ID, "Bike", d("500"), d("0"), nil)))
	require.NoError(t, tokens.SaveRefreshToken(ctx, "refresh", alice.ID, time.Now().Add(time.Hour)))

	require.NoError(t, users.Delete(ctx, alice.ID))

	_, err := users.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	res, err := ledger.FindByFilter(ctx, entity.TransactionFilter{UserID: alice.ID, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Total)

	list, err := rules.FindByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	gs, err := goals.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, gs)

	valid, err := tokens.IsRefreshTokenValid(ctx, "refresh")
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = ledger.FindByID(ctx, kept.ID, bob.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, users.Delete(ctx, alice.ID), domainerror.ErrUserNotFound)
}

func TestTokenRepository_StoresDigestsOnly(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewTokenRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")

	require.NoError(t, repo.SaveRefreshToken(ctx, "raw-refresh", alice.ID, time.Now().Add(time.Hour)))
	require.NoError(t, repo.SaveRefreshToken(ctx, "expired", alice.ID, time.Now().Add(-time.Minute)))

	var stored int64
	require.NoError(t, db.Table("refresh_tokens").Where("token_hash = ?", "raw-refresh").Count(&stored).Error)
	assert.Zero(t, stored)

	valid, err := repo.IsRefreshTokenValid(ctx, "raw-refresh")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = repo.IsRefreshTokenValid(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, valid)

	require.NoError(t, repo.InvalidateRefreshToken(ctx, "raw-refresh"))
	valid, err = repo.IsRefreshTokenValid(ctx, "raw-refresh")
	require.NoError(t, err)
	assert.False(t, valid)

	assert.ErrorIs(t, repo.InvalidateRefreshToken(ctx, "never-issued"), domainerror.ErrInvalidToken)
}

func TestTokenRepository_ResetTokensAreSingleUse(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewTokenRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")

	require.NoError(t, repo.SavePasswordResetToken(ctx, "reset", alice.ID, alice.Email, time.Now().Add(time.Hour)))

	got, err := repo.GetPasswordResetToken(ctx, "reset")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.UserID)

	require.NoError(t, repo.InvalidatePasswordResetToken(ctx, "reset"))
	_, err = repo.GetPasswordResetToken(ctx, "reset")
	assert.ErrorIs(t, err, domainerror.ErrInvalidResetToken)
}
