package adapters_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/adapters"
	"github.com/finance-planner/backend/internal/integration/persistence"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := entity.NewUser("alice", "alice@example.com", "hash")
	require.NoError(t, persistence.NewUserRepository(db).Create(context.Background(), u))
	return u
}

func TestTokenService_PairRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := adapters.NewTokenService(adapters.TokenConfig{Secret: "test-secret"}, persistence.NewTokenRepository(db))
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, user.ID, user.Username)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	// A refresh token is not accepted as an access token and vice versa.
	_, err = svc.ValidateAccessToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	_, err = svc.ValidateRefreshToken(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestTokenService_RotationRevokesOldRefreshToken(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := adapters.NewTokenService(adapters.TokenConfig{Secret: "test-secret"}, persistence.NewTokenRepository(db))
	ctx := context.Background()

	first, err := svc.GenerateTokenPair(ctx, user.ID, user.Username)
	require.NoError(t, err)
	second, err := svc.GenerateTokenPair(ctx, user.ID, user.Username)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	require.NoError(t, svc.InvalidateRefreshToken(ctx, first.RefreshToken))
	_, err = svc.ValidateRefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	require.NoError(t, svc.InvalidateAllUserTokens(ctx, user.ID))
	_, err = svc.ValidateRefreshToken(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_RejectsForeignSignatureAndExpiry(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	repo := persistence.NewTokenRepository(db)
	ctx := context.Background()

	other := adapters.NewTokenService(adapters.TokenConfig{Secret: "other"}, repo)
	pair, err := other.GenerateTokenPair(ctx, user.ID, user.Username)
	require.NoError(t, err)

	svc := adapters.NewTokenService(adapters.TokenConfig{Secret: "test-secret"}, repo)
	_, err = svc.ValidateAccessToken(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	expiring := adapters.NewTokenService(adapters.TokenConfig{Secret: "test-secret", AccessTokenDuration: time.Nanosecond}, repo)
	short, err := expiring.GenerateTokenPair(ctx, user.ID, user.Username)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = svc.ValidateAccessToken(ctx, short.AccessToken)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
}

func TestPasswordResetTokenService_SingleUse(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	svc := adapters.NewPasswordResetTokenService(persistence.NewTokenRepository(db))
	ctx := context.Background()

	token, err := svc.GenerateResetToken(ctx, user.ID, user.Email)
	require.NoError(t, err)
	assert.Len(t, token.Token, 64)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	got, err := svc.ValidateResetToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, user.Email, got.Email)

	require.NoError(t, svc.InvalidateResetToken(ctx, token.Token))
	_, err = svc.ValidateResetToken(ctx, token.Token)
	assert.ErrorIs(t, err, domainerror.ErrInvalidResetToken)

	_, err = svc.ValidateResetToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, domainerror.ErrInvalidResetToken)
}

func TestPasswordService(t *testing.T) {
	svc := adapters.NewPasswordService(bcrypt.MinCost)

	hash, err := svc.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyPassword(hash, "correct horse"))
	assert.ErrorIs(t, svc.VerifyPassword(hash, "wrong horse"), domainerror.ErrInvalidCredentials)

	assert.ErrorIs(t, svc.ValidatePasswordStrength("short"), domainerror.ErrWeakPassword)
	assert.NoError(t, svc.ValidatePasswordStrength("longenough"))
}

func TestSystemClock_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	assert.Equal(t, loc, adapters.NewSystemClock(loc).Now().Location())
	assert.Equal(t, time.UTC, adapters.NewSystemClock(nil).Now().Location())
}

func TestRetrier(t *testing.T) {
	r := adapters.NewRetrier(adapters.RetryConfig{MaxRetries: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond})
	ctx := context.Background()

	t.Run("retries serialization failures", func(t *testing.T) {
		calls := 0
		err := r.Retry(ctx, func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("append: %w", &pgconn.PgError{Code: "40001"})
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after budget", func(t *testing.T) {
		calls := 0
		err := r.Retry(ctx, func() error {
			calls++
			return &pgconn.PgError{Code: "40P01"}
		})
		require.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		err := r.Retry(ctx, func() error {
			calls++
			return domainerror.ErrRecurringNotFound
		})
		assert.ErrorIs(t, err, domainerror.ErrRecurringNotFound)
		assert.Equal(t, 1, calls)
	})
}

func TestIsTransient(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03", "57P01", "53300", "08006"} {
		assert.True(t, adapters.IsTransient(&pgconn.PgError{Code: code}), code)
	}
	assert.True(t, adapters.IsTransient(fmt.Errorf("append: %w", &pgconn.PgError{Code: "40001"})))
	assert.True(t, adapters.IsTransient(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, adapters.IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, adapters.IsTransient(nil))
}
