// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
)

type txKey struct{}

// DBFromContext returns the transaction carried by ctx, or fallback when ctx
// holds none. The result is bound to ctx.
func DBFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// txManager implements the adapter.TxManager interface on top of GORM.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &txManager{db: db}
}

// WithinTransaction runs fn in a database transaction. A call made while a
// transaction is already active joins it instead of nesting.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
