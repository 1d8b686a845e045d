package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// analyticsRepository implements the adapter.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) adapter.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

func (r *analyticsRepository) scoped(ctx context.Context, filter entity.AnalyticsFilter) *gorm.DB {
	query := DBFromContext(ctx, r.db).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", entity.DateOf(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", entity.DateOf(*filter.EndDate))
	}
	return query
}

// GetSummary returns income and expense totals matching the filter.
func (r *analyticsRepository) GetSummary(ctx context.Context, filter entity.AnalyticsFilter) (*entity.Summary, error) {
	var rows []struct {
		Type  string          `gorm:"column:type"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.scoped(ctx, filter).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	summary := &entity.Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			summary.Income = row.Total.Round(2)
		case entity.TransactionTypeExpense:
			summary.Expense = row.Total.Round(2)
		}
	}
	return summary, nil
}

// ListCategories returns every distinct category the owner has used, ignoring dates.
func (r *analyticsRepository) ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var categories []string
	err := DBFromContext(ctx, r.db).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetExpenseByCategory returns expense totals per category within the filter.
func (r *analyticsRepository) GetExpenseByCategory(ctx context.Context, filter entity.AnalyticsFilter) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.scoped(ctx, filter).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total.Round(2)
	}
	return totals, nil
}

// ListForTrend returns the entries matching the filter, ordered by date.
func (r *analyticsRepository) ListForTrend(ctx context.Context, filter entity.AnalyticsFilter) ([]*entity.Transaction, error) {
	var models []model.TransactionModel
	if err := r.scoped(ctx, filter).Order("date ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list trend entries: %w", err)
	}

	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}
