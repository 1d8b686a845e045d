package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table.
type RecurringTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Type        string          `gorm:"type:varchar(10);not null"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	StartDate   time.Time       `gorm:"type:date;not null;index"`
	EndDate     *time.Time      `gorm:"type:date"`
	LastRunDate time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	var endDate *time.Time
	if m.EndDate != nil {
		d := entity.DateOf(*m.EndDate)
		endDate = &d
	}

	return &entity.RecurringTransaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		Type:        entity.TransactionType(m.Type),
		Frequency:   entity.Frequency(m.Frequency),
		StartDate:   entity.DateOf(m.StartDate),
		EndDate:     endDate,
		LastRunDate: entity.DateOf(m.LastRunDate),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a RecurringTransactionModel from a domain entity.
func RecurringTransactionFromEntity(r *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Type:        string(r.Type),
		Frequency:   string(r.Frequency),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		LastRunDate: entity.DateOf(r.LastRunDate),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
