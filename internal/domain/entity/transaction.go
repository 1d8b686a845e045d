// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// IsValid reports whether the type is one of the supported kinds.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Field limits for ledger entries.
const (
	MaxTitleLength    = 255
	MaxCategoryLength = 100
	MaxNoteLength     = 1000
)

// Transaction is a concrete, dated income or expense record in a user's ledger.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Amount          decimal.Decimal // Always positive; Type carries the sign
	Category        string
	Type            TransactionType
	Date            time.Time
	Note            string
	RecurringRuleID *uuid.UUID // Set when produced by the recurrence scheduler
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity dated on the calendar day of date.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	category string,
	transactionType TransactionType,
	date time.Time,
	note string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Category:  category,
		Type:      transactionType,
		Date:      DateOf(date),
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SignedAmount returns the amount as a positive value for income and negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFilter narrows ledger queries. Zero values mean "no constraint";
// set fields compose with logical AND.
type TransactionFilter struct {
	UserID    uuid.UUID
	Category  string
	Type      TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Limit     int
	Offset    int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Limit        int
	Offset       int
}
