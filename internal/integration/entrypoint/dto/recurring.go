package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for rule creation.
type CreateRecurringRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Frequency   string          `json:"frequency"`
	StartDate   string          `json:"startDate"`
	EndDate     *string         `json:"endDate,omitempty"`
}

// RecurringResponse represents a recurring rule in API responses.
type RecurringResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Frequency   string    `json:"frequency"`
	StartDate   string    `json:"startDate"`
	EndDate     *string   `json:"endDate,omitempty"`
	LastRunDate string    `json:"lastRunDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RunRecurringResponse summarizes a manual scheduler cycle.
type RunRecurringResponse struct {
	Today        string `json:"today"`
	Candidates   int    `json:"candidates"`
	Due          int    `json:"due"`
	Materialized int    `json:"materialized"`
	Skipped      int    `json:"skipped"`
}

// ToRecurringResponse converts a domain rule to a response DTO.
func ToRecurringResponse(r *entity.RecurringTransaction) RecurringResponse {
	resp := RecurringResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount.StringFixed(2),
		Category:    r.Category,
		Type:        string(r.Type),
		Frequency:   string(r.Frequency),
		StartDate:   r.StartDate.Format(entity.DateLayout),
		LastRunDate: r.LastRunDate.Format(entity.DateLayout),
		CreatedAt:   r.CreatedAt,
	}
	if r.EndDate != nil {
		end := r.EndDate.Format(entity.DateLayout)
		resp.EndDate = &end
	}
	return resp
}

// ToRunRecurringResponse converts a cycle output to a response DTO.
func ToRunRecurringResponse(out *recurring.MaterializeDueOutput) RunRecurringResponse {
	return RunRecurringResponse{
		Today:        out.Today.Format(entity.DateLayout),
		Candidates:   out.Candidates,
		Due:          out.Due,
		Materialized: out.Materialized,
		Skipped:      out.Skipped,
	}
}
