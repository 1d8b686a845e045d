package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateRecurringInput represents the input for recurring rule creation.
type CreateRecurringInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        entity.TransactionType
	Frequency   entity.Frequency
	StartDate   time.Time
	EndDate     *time.Time
}

// CreateRecurringOutput represents the output of recurring rule creation.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase handles recurring rule creation.
type CreateRecurringUseCase struct {
	ruleRepo adapter.RecurringTransactionRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(ruleRepo adapter.RecurringTransactionRepository) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute validates the input and stores a rule whose last run date equals its start date.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Category = strings.TrimSpace(input.Category)

	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	rule := entity.NewRecurringTransaction(
		input.UserID,
		input.Title,
		input.Amount,
		input.Category,
		input.Type,
		input.Frequency,
		input.StartDate,
		input.EndDate,
	)
	rule.Description = strings.TrimSpace(input.Description)

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringOutput{
		Recurring: rule,
	}, nil
}

func validateCreateInput(input CreateRecurringInput) error {
	if input.Title == "" || input.Category == "" {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"title and category are required",
			nil,
		)
	}
	if len(input.Title) > entity.MaxTitleLength || len(input.Category) > entity.MaxCategoryLength {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			fmt.Sprintf("title must be at most %d and category at most %d characters", entity.MaxTitleLength, entity.MaxCategoryLength),
			nil,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !input.Type.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringType,
			"type must be Income or Expense",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Frequency.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be Daily, Weekly or Monthly",
			domainerror.ErrInvalidFrequency,
		)
	}
	if input.StartDate.IsZero() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringDate,
			"start date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if input.EndDate != nil && entity.DateOf(*input.EndDate).Before(entity.DateOf(input.StartDate)) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeEndBeforeStart,
			"end date must not be before start date",
			domainerror.ErrEndBeforeStart,
		)
	}
	return nil
}
