package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Date uses the YYYY-MM-DD layout.
type CreateTransactionRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Date     string          `json:"date"`
	Note     string          `json:"note,omitempty"`
}

// UpdateTransactionRequest represents a partial transaction update.
type UpdateTransactionRequest struct {
	Title    *string          `json:"title,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category *string          `json:"category,omitempty"`
	Type     *string          `json:"type,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Note     *string          `json:"note,omitempty"`
}

// TransactionResponse represents a single ledger entry in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Amount          string    `json:"amount"`
	Category        string    `json:"category"`
	Type            string    `json:"type"`
	Date            string    `json:"date"`
	Note            string    `json:"note"`
	RecurringRuleID *string   `json:"recurringRuleId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TransactionListResponse represents a page of ledger entries.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// ToTransactionResponse converts a domain Transaction to a response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Amount:    t.Amount.StringFixed(2),
		Category:  t.Category,
		Type:      string(t.Type),
		Date:      t.Date.Format(entity.DateLayout),
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.RecurringRuleID != nil {
		id := t.RecurringRuleID.String()
		resp.RecurringRuleID = &id
	}
	return resp
}

// ToTransactionListResponse converts a list result to a response DTO.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(result.Transactions))
	for _, t := range result.Transactions {
		items = append(items, ToTransactionResponse(t))
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        result.Total,
		Limit:        result.Limit,
		Offset:       result.Offset,
	}
}
