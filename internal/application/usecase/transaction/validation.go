// Package transaction contains ledger entry use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// entryFields are the user-editable fields shared by create and update.
type entryFields struct {
	Title    string
	Amount   decimal.Decimal
	Category string
	Type     entity.TransactionType
	Date     time.Time
	Note     string
}

func (f *entryFields) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Category = strings.TrimSpace(f.Category)
	f.Note = strings.TrimSpace(f.Note)
}

func (f entryFields) validate() error {
	switch {
	case f.Title == "":
		return domainerror.NewTransactionError(domainerror.ErrCodeTitleRequired, "title is required", domainerror.ErrTitleRequired)
	case len(f.Title) > entity.MaxTitleLength:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTitleTooLong,
			fmt.Sprintf("title must not exceed %d characters", entity.MaxTitleLength),
			domainerror.ErrTitleTooLong,
		)
	case f.Category == "":
		return domainerror.NewTransactionError(domainerror.ErrCodeCategoryRequired, "category is required", domainerror.ErrCategoryRequired)
	case len(f.Category) > entity.MaxCategoryLength:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", entity.MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	case len(f.Note) > entity.MaxNoteLength:
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", entity.MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	case !f.Amount.IsPositive():
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	case !f.Type.IsValid():
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'Income' or 'Expense'",
			domainerror.ErrInvalidTransactionType,
		)
	case f.Date.IsZero():
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

func invalidateAnalytics(ctx context.Context, cache adapter.AnalyticsCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate analytics cache", "user_id", userID, "error", err)
	}
}
