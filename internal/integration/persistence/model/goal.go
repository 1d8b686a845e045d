package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// GoalModel represents the savings_goals table in the database.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title        string          `gorm:"type:varchar(255);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavedAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status       string          `gorm:"type:varchar(20);not null;default:'Active'"`
	TargetDate   *time.Time      `gorm:"type:date"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a GoalModel to a domain SavingsGoal entity.
func (m *GoalModel) ToEntity() *entity.SavingsGoal {
	var targetDate *time.Time
	if m.TargetDate != nil {
		d := entity.DateOf(*m.TargetDate)
		targetDate = &d
	}

	return &entity.SavingsGoal{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		TargetAmount: m.TargetAmount,
		SavedAmount:  m.SavedAmount,
		Status:       entity.GoalStatus(m.Status),
		TargetDate:   targetDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain SavingsGoal entity.
func GoalFromEntity(goal *entity.SavingsGoal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Title:        goal.Title,
		TargetAmount: goal.TargetAmount,
		SavedAmount:  goal.SavedAmount,
		Status:       string(goal.Status),
		TargetDate:   goal.TargetDate,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
