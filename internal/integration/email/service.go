// Package email provides email queueing, rendering and delivery.
package email

import (
	"context"
	"fmt"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue       adapter.EmailQueueRepository
	maxAttempts int
}

// NewService creates a new email service. Jobs it queues are attempted at
// most maxAttempts times; a non-positive value uses the entity default.
func NewService(queue adapter.EmailQueueRepository, maxAttempts int) *Service {
	if maxAttempts <= 0 {
		maxAttempts = entity.DefaultEmailMaxAttempts
	}
	return &Service{
		queue:       queue,
		maxAttempts: maxAttempts,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	return s.enqueue(ctx, entity.TemplatePasswordReset, input.UserEmail, input.UserName,
		"Reset your password - Finance Planner", templateData)
}

// QueueRecurringMaterializedEmail queues a notice that a recurring rule
// produced a ledger entry.
func (s *Service) QueueRecurringMaterializedEmail(ctx context.Context, input adapter.QueueRecurringMaterializedInput) error {
	templateData := map[string]interface{}{
		"user_name": input.UserName,
		"title":     input.Title,
		"amount":    input.Amount,
		"currency":  input.Currency,
		"type":      input.Type,
		"frequency": input.Frequency,
		"date":      input.Date,
	}

	subject := fmt.Sprintf("Recurring %s recorded: %s", input.Type, input.Title)
	return s.enqueue(ctx, entity.TemplateRecurringMaterialized, input.UserEmail, input.UserName, subject, templateData)
}

func (s *Service) enqueue(ctx context.Context, template entity.EmailTemplateType, to, name, subject string, data map[string]interface{}) error {
	job := entity.NewEmailJob(template, to, name, subject, data)
	job.MaxAttempts = s.maxAttempts

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", template),
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
