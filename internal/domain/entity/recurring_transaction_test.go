package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func datePtr(t *testing.T, s string) *time.Time {
	d := date(t, s)
	return &d
}

func newRule(t *testing.T, freq Frequency, start string, end *time.Time) *RecurringTransaction {
	t.Helper()
	return NewRecurringTransaction(
		uuid.New(),
		"Rent",
		decimal.NewFromInt(1200),
		"Housing",
		TransactionTypeExpense,
		freq,
		date(t, start),
		end,
	)
}

func TestNewRecurringTransaction_CopiesStartIntoLastRun(t *testing.T) {
	start := time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC)
	r := NewRecurringTransaction(uuid.New(), "Gym", decimal.NewFromInt(40), "Health",
		TransactionTypeExpense, FrequencyMonthly, start, nil)

	assert.Equal(t, DateOf(start), r.StartDate)
	assert.Equal(t, r.StartDate, r.LastRunDate)
	assert.Nil(t, r.EndDate)
}

func TestRecurringTransaction_IsActiveOn(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    *time.Time
		today  string
		active bool
	}{
		{name: "start in the future", start: "2024-05-01", today: "2024-04-30", active: false},
		{name: "start equals today", start: "2024-05-01", today: "2024-05-01", active: true},
		{name: "open ended", start: "2020-01-01", today: "2030-12-31", active: true},
		{name: "end in the past", start: "2024-01-01", end: datePtr(t, "2024-03-31"), today: "2024-04-01", active: false},
		{name: "end equals today", start: "2024-01-01", end: datePtr(t, "2024-03-31"), today: "2024-03-31", active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRule(t, FrequencyDaily, tt.start, tt.end)
			assert.Equal(t, tt.active, r.IsActiveOn(date(t, tt.today)))
		})
	}
}

func TestRecurringTransaction_FutureStartNeverMaterializes(t *testing.T) {
	for _, freq := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, "Yearly"} {
		r := newRule(t, freq, "2025-01-01", nil)
		r.LastRunDate = date(t, "2023-01-01")

		for _, today := range []string{"2024-01-01", "2024-06-15", "2024-12-31"} {
			assert.False(t, r.ShouldMaterialize(date(t, today)), "%s on %s", freq, today)
		}
	}
}

func TestRecurringTransaction_ExpiredNeverMaterializes(t *testing.T) {
	r := newRule(t, FrequencyDaily, "2024-01-01", datePtr(t, "2024-01-31"))

	assert.False(t, r.ShouldMaterialize(date(t, "2024-02-01")))
	assert.False(t, r.ShouldMaterialize(date(t, "2025-02-01")))
}

func TestRecurringTransaction_IsDue(t *testing.T) {
	tests := []struct {
		name    string
		freq    Frequency
		lastRun string
		today   string
		due     bool
	}{
		{name: "daily same day", freq: FrequencyDaily, lastRun: "2024-03-10", today: "2024-03-10", due: false},
		{name: "daily next day", freq: FrequencyDaily, lastRun: "2024-03-10", today: "2024-03-11", due: true},
		{name: "daily after gap", freq: FrequencyDaily, lastRun: "2024-03-10", today: "2024-03-20", due: true},
		{name: "weekly six days", freq: FrequencyWeekly, lastRun: "2024-03-10", today: "2024-03-16", due: false},
		{name: "weekly seven days", freq: FrequencyWeekly, lastRun: "2024-03-10", today: "2024-03-17", due: true},
		{name: "weekly across year", freq: FrequencyWeekly, lastRun: "2023-12-28", today: "2024-01-04", due: true},
		{name: "monthly one day into next month", freq: FrequencyMonthly, lastRun: "2024-01-31", today: "2024-02-01", due: true},
		{name: "monthly same month", freq: FrequencyMonthly, lastRun: "2024-02-01", today: "2024-02-29", due: false},
		{name: "monthly same month different year", freq: FrequencyMonthly, lastRun: "2023-02-15", today: "2024-02-01", due: true},
		{name: "monthly start on 31st fires in 30 day month", freq: FrequencyMonthly, lastRun: "2024-03-31", today: "2024-04-01", due: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRule(t, tt.freq, "2020-01-01", nil)
			r.LastRunDate = date(t, tt.lastRun)
			assert.Equal(t, tt.due, r.IsDue(date(t, tt.today)))
		})
	}
}

func TestRecurringTransaction_MonthlyFiresOncePerMonth(t *testing.T) {
	r := newRule(t, FrequencyMonthly, "2024-01-31", nil)

	first := date(t, "2024-02-01")
	require.True(t, r.IsDue(first))
	r.LastRunDate = first

	for day := 2; day <= 29; day++ {
		today := time.Date(2024, time.February, day, 0, 0, 0, 0, time.UTC)
		assert.False(t, r.IsDue(today), "day %d", day)
	}
	assert.True(t, r.IsDue(date(t, "2024-03-01")))
}

func TestRecurringTransaction_UnknownFrequencyNeverDue(t *testing.T) {
	for _, freq := range []Frequency{"", "Yearly", "daily", "Fortnightly"} {
		r := newRule(t, freq, "2000-01-01", nil)

		for _, today := range []string{"2000-01-01", "2000-01-02", "2000-02-01", "2010-06-15", "2099-12-31"} {
			assert.False(t, r.IsDue(date(t, today)), "%q on %s", freq, today)
		}
	}
}

func TestRecurringTransaction_Materialize(t *testing.T) {
	r := newRule(t, FrequencyWeekly, "2024-01-01", nil)
	today := date(t, "2024-01-08")

	entry := r.Materialize(today)

	assert.Equal(t, r.UserID, entry.UserID)
	assert.Equal(t, r.Title, entry.Title)
	assert.True(t, r.Amount.Equal(entry.Amount))
	assert.Equal(t, r.Category, entry.Category)
	assert.Equal(t, r.Type, entry.Type)
	assert.Equal(t, today, entry.Date)
	assert.Equal(t, "Auto-generated from Recurring (Weekly)", entry.Note)
	require.NotNil(t, entry.RecurringRuleID)
	assert.Equal(t, r.ID, *entry.RecurringRuleID)
	assert.Equal(t, date(t, "2024-01-01"), r.LastRunDate, "materialize must not advance the rule")
}

func TestDateOf_KeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	local := time.Date(2024, 6, 1, 3, 0, 0, 0, loc) // still May 31 in UTC

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), DateOf(local))
}
