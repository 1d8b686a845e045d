// Package recurring contains recurring transaction use cases, including the
// cycle that materializes due rules into ledger entries.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// MaterializeDueInput represents the input for one scheduler cycle.
type MaterializeDueInput struct {
	// Today overrides the clock for operator backfills. It may not be later
	// than the clock's current day.
	Today *time.Time

	// UserID limits the cycle to one owner's rules.
	UserID *uuid.UUID
}

// MaterializeDueOutput summarizes one scheduler cycle.
type MaterializeDueOutput struct {
	Today        time.Time
	Candidates   int
	Due          int
	Materialized int
	Skipped      int
	Entries      []*entity.Transaction
}

// MaterializeDueUseCase evaluates every active rule against a single "today"
// and appends one ledger entry per due rule.
//
// Each rule's entry insert and last-run advance share one store transaction,
// so a rule is either fully processed or untouched. Rules committed before a
// failure stay committed; the next cycle picks up the rest.
type MaterializeDueUseCase struct {
	ruleRepo        adapter.RecurringTransactionRepository
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	txManager       adapter.TxManager
	retrier         adapter.Retrier
	cache           adapter.AnalyticsCache
	emailService    adapter.EmailService
	clock           adapter.Clock
}

// NewMaterializeDueUseCase creates a new MaterializeDueUseCase instance.
// userRepo and emailService may be nil to disable reminder emails.
func NewMaterializeDueUseCase(
	ruleRepo adapter.RecurringTransactionRepository,
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	txManager adapter.TxManager,
	retrier adapter.Retrier,
	cache adapter.AnalyticsCache,
	emailService adapter.EmailService,
	clock adapter.Clock,
) *MaterializeDueUseCase {
	return &MaterializeDueUseCase{
		ruleRepo:        ruleRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		retrier:         retrier,
		cache:           cache,
		emailService:    emailService,
		clock:           clock,
	}
}

// Execute runs one cycle. On a store failure it returns the partial output
// together with the error.
func (uc *MaterializeDueUseCase) Execute(ctx context.Context, input MaterializeDueInput) (*MaterializeDueOutput, error) {
	// Only the scheduler's sleep is cancellable; a started cycle runs to completion.
	ctx = context.WithoutCancel(ctx)

	today := entity.DateOf(uc.clock.Now())
	if input.Today != nil {
		requested := entity.DateOf(*input.Today)
		if requested.After(today) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeFutureRunDate,
				"cannot run the scheduler for a day after "+today.Format(entity.DateLayout),
				domainerror.ErrFutureRunDate,
			)
		}
		today = requested
	}

	rules, err := uc.ruleRepo.ListActive(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list active recurring transactions: %w", err)
	}
	if input.UserID != nil {
		rules = ownedBy(rules, *input.UserID)
	}

	output := &MaterializeDueOutput{
		Today:      today,
		Candidates: len(rules),
	}

	for _, rule := range rules {
		if !rule.ShouldMaterialize(today) {
			continue
		}
		output.Due++

		entry, err := uc.materialize(ctx, rule, today)
		if errors.Is(err, domainerror.ErrRecurringNotFound) {
			output.Skipped++
			slog.InfoContext(ctx, "recurring transaction removed or already advanced, skipping",
				"recurring_id", rule.ID,
				"user_id", rule.UserID,
			)
			continue
		}
		if err != nil {
			return output, fmt.Errorf("failed to materialize recurring transaction %s: %w", rule.ID, err)
		}

		output.Materialized++
		output.Entries = append(output.Entries, entry)

		slog.InfoContext(ctx, "recurring transaction materialized",
			"recurring_id", rule.ID,
			"transaction_id", entry.ID,
			"user_id", rule.UserID,
			"frequency", rule.Frequency,
			"date", today.Format(entity.DateLayout),
		)

		uc.afterCommit(ctx, rule, entry)
	}

	return output, nil
}

func (uc *MaterializeDueUseCase) materialize(ctx context.Context, rule *entity.RecurringTransaction, today time.Time) (*entity.Transaction, error) {
	entry := rule.Materialize(today)
	seen := rule.LastRunDate

	err := uc.retrier.Retry(ctx, func() error {
		return uc.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ruleRepo.Advance(txCtx, rule.ID, seen, today); err != nil {
				return err
			}
			return uc.transactionRepo.Append(txCtx, entry)
		})
	})
	if err != nil {
		return nil, err
	}

	rule.LastRunDate = today
	return entry, nil
}

// afterCommit runs best-effort side effects. Failures are logged only.
func (uc *MaterializeDueUseCase) afterCommit(ctx context.Context, rule *entity.RecurringTransaction, entry *entity.Transaction) {
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, rule.UserID); err != nil {
			slog.WarnContext(ctx, "failed to invalidate analytics cache",
				"user_id", rule.UserID,
				"error", err,
			)
		}
	}

	if uc.userRepo == nil || uc.emailService == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, rule.UserID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load owner for recurring reminder",
			"user_id", rule.UserID,
			"error", err,
		)
		return
	}
	if !user.RecurringReminders {
		return
	}

	err = uc.emailService.QueueRecurringMaterializedEmail(ctx, adapter.QueueRecurringMaterializedInput{
		UserEmail: user.Email,
		UserName:  user.Username,
		Title:     entry.Title,
		Amount:    entry.Amount.StringFixed(2),
		Currency:  user.PreferredCurrency,
		Type:      string(entry.Type),
		Frequency: string(rule.Frequency),
		Date:      entry.Date.Format(entity.DateLayout),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to queue recurring reminder",
			"user_id", rule.UserID,
			"recurring_id", rule.ID,
			"error", err,
		)
	}
}

func ownedBy(rules []*entity.RecurringTransaction, userID uuid.UUID) []*entity.RecurringTransaction {
	owned := rules[:0]
	for _, rule := range rules {
		if rule.UserID == userID {
			owned = append(owned, rule)
		}
	}
	return owned
}
