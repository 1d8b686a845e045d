// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category        string          `gorm:"type:varchar(100);not null;index"`
	Type            string          `gorm:"type:varchar(10);not null"`
	Date            time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2"`
	Note            string          `gorm:"type:text"`
	RecurringRuleID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Amount:          m.Amount,
		Category:        m.Category,
		Type:            entity.TransactionType(m.Type),
		Date:            entity.DateOf(m.Date),
		Note:            m.Note,
		RecurringRuleID: m.RecurringRuleID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		Title:           transaction.Title,
		Amount:          transaction.Amount,
		Category:        transaction.Category,
		Type:            string(transaction.Type),
		Date:            entity.DateOf(transaction.Date),
		Note:            transaction.Note,
		RecurringRuleID: transaction.RecurringRuleID,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
