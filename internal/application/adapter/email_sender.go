package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers a rendered email through an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService queues templated emails for the background worker.
type EmailService interface {
	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueRecurringMaterializedEmail tells a user that a recurring rule produced a ledger entry.
	QueueRecurringMaterializedEmail(ctx context.Context, input QueueRecurringMaterializedInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueRecurringMaterializedInput represents the input for a recurring reminder email.
type QueueRecurringMaterializedInput struct {
	UserEmail string
	UserName  string
	Title     string
	Amount    string
	Currency  string
	Type      string
	Frequency string
	Date      string
}
