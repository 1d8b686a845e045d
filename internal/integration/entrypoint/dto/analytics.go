package dto

import "github.com/finance-planner/backend/internal/domain/entity"

// SummaryResponse holds income, expense and balance totals.
type SummaryResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// CategorySummaryResponse is one category's expense total.
type CategorySummaryResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// MonthlyTrendResponse is one (year, month, type) total.
type MonthlyTrendResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Type  string `json:"type"`
	Total string `json:"total"`
}

// ToSummaryResponse converts a summary to a response DTO.
func ToSummaryResponse(s *entity.Summary) SummaryResponse {
	return SummaryResponse{
		Income:  s.Income.StringFixed(2),
		Expense: s.Expense.StringFixed(2),
		Balance: s.Balance.StringFixed(2),
	}
}

// ToCategorySummaryResponse converts category totals to response DTOs.
func ToCategorySummaryResponse(rows []entity.CategoryTotal) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategorySummaryResponse{Category: r.Category, Amount: r.Amount.StringFixed(2)})
	}
	return out
}

// ToMonthlyTrendResponse converts trend points to response DTOs.
func ToMonthlyTrendResponse(points []entity.MonthlyTrendPoint) []MonthlyTrendResponse {
	out := make([]MonthlyTrendResponse, 0, len(points))
	for _, p := range points {
		out = append(out, MonthlyTrendResponse{
			Year:  p.Year,
			Month: p.Month,
			Type:  string(p.Type),
			Total: p.Total.StringFixed(2),
		})
	}
	return out
}
