package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsFilter scopes an aggregation to one owner and an optional inclusive date range.
type AnalyticsFilter struct {
	UserID    uuid.UUID
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// Summary holds income and expense totals for a filter.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// MonthlyTrendPoint is the total for one (year, month, type) bucket.
type MonthlyTrendPoint struct {
	Year  int
	Month int
	Type  TransactionType
	Total decimal.Decimal
}
