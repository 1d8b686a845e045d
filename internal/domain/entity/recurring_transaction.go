package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
)

// IsValid reports whether the frequency is one the scheduler knows how to evaluate.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// AutoGeneratedNote returns the provenance note stamped on entries the scheduler materializes.
func AutoGeneratedNote(f Frequency) string {
	return fmt.Sprintf("Auto-generated from Recurring (%s)", f)
}

// RecurringTransaction is a standing instruction to periodically create a ledger entry.
//
// LastRunDate is the calendar date on which the rule last materialized an
// entry. It starts equal to StartDate, so the first automatic entry lands on
// the next cadence boundary after the start date.
type RecurringTransaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        TransactionType
	Frequency   Frequency
	StartDate   time.Time
	EndDate     *time.Time // nil runs indefinitely
	LastRunDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecurringTransaction creates a rule whose last run marker is its start date.
func NewRecurringTransaction(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	category string,
	transactionType TransactionType,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
) *RecurringTransaction {
	now := time.Now().UTC()
	start := DateOf(startDate)

	var end *time.Time
	if endDate != nil {
		e := DateOf(*endDate)
		end = &e
	}

	return &RecurringTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Type:        transactionType,
		Frequency:   frequency,
		StartDate:   start,
		EndDate:     end,
		LastRunDate: start,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsActiveOn reports whether today falls inside the rule's inclusive date window.
func (r *RecurringTransaction) IsActiveOn(today time.Time) bool {
	today = DateOf(today)
	if DateOf(r.StartDate).After(today) {
		return false
	}
	if r.EndDate != nil && DateOf(*r.EndDate).Before(today) {
		return false
	}
	return true
}

// IsDue reports whether the rule's cadence has elapsed since LastRunDate.
// Monthly rules fire once per calendar month, ignoring day-of-month alignment.
// Unknown frequencies are never due.
func (r *RecurringTransaction) IsDue(today time.Time) bool {
	last := DateOf(r.LastRunDate)
	today = DateOf(today)

	switch r.Frequency {
	case FrequencyDaily:
		return DaysBetween(last, today) >= 1
	case FrequencyWeekly:
		return DaysBetween(last, today) >= 7
	case FrequencyMonthly:
		return last.Year() != today.Year() || last.Month() != today.Month()
	default:
		return false
	}
}

// ShouldMaterialize combines the window and cadence checks.
func (r *RecurringTransaction) ShouldMaterialize(today time.Time) bool {
	return r.IsActiveOn(today) && r.IsDue(today)
}

// Materialize builds the ledger entry this rule produces on today.
// It does not advance LastRunDate; callers persist that together with the entry.
func (r *RecurringTransaction) Materialize(today time.Time) *Transaction {
	entry := NewTransaction(
		r.UserID,
		r.Title,
		r.Amount,
		r.Category,
		r.Type,
		today,
		AutoGeneratedNote(r.Frequency),
	)
	ruleID := r.ID
	entry.RecurringRuleID = &ruleID
	return entry
}
