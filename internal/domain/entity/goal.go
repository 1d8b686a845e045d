package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "Active"
	GoalStatusCompleted GoalStatus = "Completed"
)

// SavingsGoal represents an amount the user is saving towards.
type SavingsGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	Status       GoalStatus
	TargetDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSavingsGoal creates a new active SavingsGoal.
func NewSavingsGoal(userID uuid.UUID, title string, target, saved decimal.Decimal, targetDate *time.Time) *SavingsGoal {
	now := time.Now().UTC()

	g := &SavingsGoal{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		TargetAmount: target,
		SavedAmount:  saved,
		Status:       GoalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if targetDate != nil {
		d := DateOf(*targetDate)
		g.TargetDate = &d
	}
	g.RefreshStatus()
	return g
}

// Progress returns the saved percentage of the target, capped at 100.
func (g *SavingsGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	pct := g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

// RefreshStatus marks the goal completed once the saved amount reaches the target.
func (g *SavingsGoal) RefreshStatus() {
	if g.TargetAmount.IsPositive() && g.SavedAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = GoalStatusCompleted
		return
	}
	g.Status = GoalStatusActive
}
