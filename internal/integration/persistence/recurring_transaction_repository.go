package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// recurringTransactionRepository implements the adapter.RecurringTransactionRepository interface.
type recurringTransactionRepository struct {
	db *gorm.DB
}

// NewRecurringTransactionRepository creates a new recurring rule repository instance.
func NewRecurringTransactionRepository(db *gorm.DB) adapter.RecurringTransactionRepository {
	return &recurringTransactionRepository{
		db: db,
	}
}

// Create stores a new rule.
func (r *recurringTransactionRepository) Create(ctx context.Context, rule *entity.RecurringTransaction) error {
	if err := DBFromContext(ctx, r.db).Create(model.RecurringTransactionFromEntity(rule)).Error; err != nil {
		return fmt.Errorf("failed to insert recurring transaction: %w", err)
	}
	return nil
}

// FindByID retrieves a rule by ID for its owner.
func (r *recurringTransactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringTransaction, error) {
	var m model.RecurringTransactionModel
	result := DBFromContext(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, fmt.Errorf("failed to find recurring transaction: %w", result.Error)
	}
	return m.ToEntity(), nil
}

// FindByUser lists an owner's rules ordered by start date.
func (r *recurringTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var models []model.RecurringTransactionModel
	result := DBFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("start_date ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", result.Error)
	}
	return toRecurringEntities(models), nil
}

// ListActive returns the rules whose window contains asOf, oldest first.
func (r *recurringTransactionRepository) ListActive(ctx context.Context, asOf time.Time) ([]*entity.RecurringTransaction, error) {
	day := entity.DateOf(asOf)

	var models []model.RecurringTransactionModel
	result := DBFromContext(ctx, r.db).
		Where("start_date <= ?", day).
		Where("(end_date IS NULL OR end_date >= ?)", day).
		Order("created_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list active recurring transactions: %w", result.Error)
	}
	return toRecurringEntities(models), nil
}

// Advance is a compare-and-set on last_run_date. A rule deleted or advanced
// by another runner since it was listed yields ErrRecurringNotFound.
func (r *recurringTransactionRepository) Advance(ctx context.Context, id uuid.UUID, seen, lastRunDate time.Time) error {
	result := DBFromContext(ctx, r.db).
		Model(&model.RecurringTransactionModel{}).
		Where("id = ? AND last_run_date = ?", id, entity.DateOf(seen)).
		Updates(map[string]any{
			"last_run_date": entity.DateOf(lastRunDate),
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to advance recurring transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}

// Delete removes a rule owned by userID. Entries it already produced stay.
func (r *recurringTransactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := DBFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RecurringTransactionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}

func toRecurringEntities(models []model.RecurringTransactionModel) []*entity.RecurringTransaction {
	rules := make([]*entity.RecurringTransaction, len(models))
	for i := range models {
		rules[i] = models[i].ToEntity()
	}
	return rules
}
