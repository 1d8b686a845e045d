package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	TargetDate   *string         `json:"targetDate,omitempty"`
}

// UpdateGoalRequest represents a partial goal update. An empty targetDate
// clears it.
type UpdateGoalRequest struct {
	Title        *string          `json:"title,omitempty"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
	SavedAmount  *decimal.Decimal `json:"savedAmount,omitempty"`
	TargetDate   *string          `json:"targetDate,omitempty"`
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	TargetAmount string    `json:"targetAmount"`
	SavedAmount  string    `json:"savedAmount"`
	Progress     string    `json:"progress"`
	Status       string    `json:"status"`
	TargetDate   *string   `json:"targetDate,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToGoalResponse converts a domain goal to a response DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	resp := GoalResponse{
		ID:           g.ID.String(),
		Title:        g.Title,
		TargetAmount: g.TargetAmount.StringFixed(2),
		SavedAmount:  g.SavedAmount.StringFixed(2),
		Progress:     g.Progress().StringFixed(2),
		Status:       string(g.Status),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
	if g.TargetDate != nil {
		d := g.TargetDate.Format(entity.DateLayout)
		resp.TargetDate = &d
	}
	return resp
}
