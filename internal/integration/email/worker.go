package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/email/templates"
)

// Worker processes the email queue and sends emails.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	clock        adapter.Clock
	pollInterval time.Duration
	batchSize    int
	retainSent   time.Duration
	lastCleanup  time.Time
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	// RetainSent is how long sent jobs stay in the queue table.
	RetainSent time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		RetainSent:   7 * 24 * time.Hour,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, clock adapter.Clock, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.RetainSent <= 0 {
		config.RetainSent = defaults.RetainSent
	}

	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		clock:        clock,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		retainSent:   config.RetainSent,
	}
}

// Start runs the worker loop until ctx is cancelled. It returns nil on shutdown.
func (w *Worker) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.ProcessNow(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "email worker shutting down")
			return nil
		case <-ticker.C:
			w.ProcessNow(ctx)
		}
	}
}

// ProcessNow claims and processes one batch, then prunes old sent jobs at
// most once an hour.
func (w *Worker) ProcessNow(ctx context.Context) {
	now := w.clock.Now().UTC()

	jobs, err := w.queue.ClaimPendingJobs(ctx, now, w.batchSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to claim pending email jobs", "error", err)
		return
	}

	if len(jobs) > 0 {
		slog.DebugContext(ctx, "processing email batch", "count", len(jobs))
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			// Unprocessed claims go back to pending.
			w.release(context.WithoutCancel(ctx), job)
			continue
		}
		w.processJob(ctx, job)
	}

	if now.Sub(w.lastCleanup) >= time.Hour {
		w.lastCleanup = now
		deleted, err := w.queue.DeleteSentBefore(ctx, now.Add(-w.retainSent))
		if err != nil {
			slog.WarnContext(ctx, "failed to prune sent email jobs", "error", err)
		} else if deleted > 0 {
			slog.InfoContext(ctx, "pruned sent email jobs", "count", deleted)
		}
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure

		w.handleFailure(ctx, job, err, permanent)
		return
	}

	job.MarkSent(result.ProviderID, w.clock.Now().UTC())
	if err := w.queue.Update(ctx, job); err != nil {
		logger.ErrorContext(ctx, "failed to mark job as sent", "error", err)
		return
	}

	logger.InfoContext(ctx, "email sent", "provider_id", result.ProviderID)
}

func (w *Worker) renderTemplate(job *entity.EmailJob) (string, string, error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  getString(job.TemplateData, "user_name"),
			ResetURL:  getString(job.TemplateData, "reset_url"),
			ExpiresIn: getString(job.TemplateData, "expires_in"),
		}
	case entity.TemplateRecurringMaterialized:
		data = templates.RecurringMaterializedData{
			UserName:  getString(job.TemplateData, "user_name"),
			Title:     getString(job.TemplateData, "title"),
			Amount:    getString(job.TemplateData, "amount"),
			Currency:  getString(job.TemplateData, "currency"),
			Type:      getString(job.TemplateData, "type"),
			Frequency: getString(job.TemplateData, "frequency"),
			Date:      getString(job.TemplateData, "date"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}

	html, text, err := w.renderer.Render(string(job.TemplateType), data)
	if err != nil {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render template",
			errors.Join(domainerror.ErrTemplateRenderFailed, err),
		)
	}
	return html, text, nil
}

func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent, w.clock.Now().UTC())

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.ErrorContext(ctx, "failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
		return
	}

	if job.Status == entity.EmailStatusFailed {
		slog.WarnContext(ctx, "email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.InfoContext(ctx, "email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) release(ctx context.Context, job *entity.EmailJob) {
	job.Status = entity.EmailStatusPending
	if err := w.queue.Update(ctx, job); err != nil {
		slog.ErrorContext(ctx, "failed to release claimed email job", "job_id", job.ID, "error", err)
	}
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
