package persistence_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/persistence"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entity.ParseDate(s)
	require.NoError(t, err)
	return d
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := entity.NewUser(username, username+"@example.com", "hash")
	require.NoError(t, persistence.NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedEntry(t *testing.T, db *gorm.DB, userID uuid.UUID, title, category string, kind entity.TransactionType, amount, date string) *entity.Transaction {
	t.Helper()
	tx := entity.NewTransaction(userID, title, d(amount), category, kind, mustDate(t, date), "")
	require.NoError(t, persistence.NewTransactionRepository(db).Append(context.Background(), tx))
	return tx
}
