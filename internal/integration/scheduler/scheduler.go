// Package scheduler runs the recurring transaction cycle on an interval.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/infra/metrics"
)

const (
	// DefaultInterval is the pause between cycles.
	DefaultInterval = 6 * time.Hour
	// DefaultLockTTL bounds how long a crashed holder blocks other replicas.
	DefaultLockTTL = 10 * time.Minute

	lockName = "recurring-scheduler"
)

// Cycle runs one materialization pass.
type Cycle interface {
	Execute(ctx context.Context, input recurring.MaterializeDueInput) (*recurring.MaterializeDueOutput, error)
}

// Config holds scheduler settings.
type Config struct {
	Interval time.Duration
	LockTTL  time.Duration
}

// Scheduler periodically runs the cycle. Cycles never overlap: the loop is
// sequential in-process and guarded by a SchedulerLock across processes.
type Scheduler struct {
	cycle    Cycle
	lock     adapter.SchedulerLock
	metrics  *metrics.Metrics
	interval time.Duration
	lockTTL  time.Duration
}

// New creates a new Scheduler. m may be nil.
func New(cycle Cycle, lock adapter.SchedulerLock, m *metrics.Metrics, cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = DefaultLockTTL
	}
	return &Scheduler{
		cycle:    cycle,
		lock:     lock,
		metrics:  m,
		interval: cfg.Interval,
		lockTTL:  cfg.LockTTL,
	}
}

// Start runs a cycle immediately and then once per interval until ctx is
// cancelled. Cycle failures are logged and never stop the loop. Start
// returns nil on shutdown.
func (s *Scheduler) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "recurring scheduler started", "interval", s.interval)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "recurring scheduler shutting down")
			return nil
		case <-timer.C:
		}

		if ctx.Err() != nil {
			continue
		}

		if _, err := s.RunOnce(ctx, nil); err != nil {
			slog.ErrorContext(ctx, "recurring scheduler cycle failed", "error", err)
		}

		timer.Reset(s.interval)
	}
}

// RunOnce executes a single cycle under the lock. today overrides the
// clock when non-nil and must not be later than the clock's day. It returns
// ErrSchedulerLocked when another cycle holds the lock.
func (s *Scheduler) RunOnce(ctx context.Context, today *time.Time) (*recurring.MaterializeDueOutput, error) {
	return s.run(ctx, recurring.MaterializeDueInput{Today: today})
}

// RunForUser executes a cycle as of the clock's day over one owner's rules.
// It takes the same lock as RunOnce.
func (s *Scheduler) RunForUser(ctx context.Context, userID uuid.UUID) (*recurring.MaterializeDueOutput, error) {
	return s.run(ctx, recurring.MaterializeDueInput{UserID: &userID})
}

func (s *Scheduler) run(ctx context.Context, input recurring.MaterializeDueInput) (*recurring.MaterializeDueOutput, error) {
	release, ok, err := s.lock.Acquire(ctx, lockName, s.lockTTL)
	if err != nil {
		s.observe(metrics.ResultError, nil, 0)
		return nil, fmt.Errorf("failed to acquire scheduler lock: %w", err)
	}
	if !ok {
		s.observe(metrics.ResultLocked, nil, 0)
		slog.InfoContext(ctx, "recurring scheduler cycle skipped, lock held elsewhere")
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeSchedulerLocked,
			"a scheduler cycle is already running",
			domainerror.ErrSchedulerLocked,
		)
	}
	defer release()

	start := time.Now()
	output, err := s.cycle.Execute(ctx, input)
	elapsed := time.Since(start)

	if err != nil {
		s.observe(metrics.ResultError, output, elapsed)
		return output, err
	}
	s.observe(metrics.ResultOK, output, elapsed)

	slog.InfoContext(ctx, "recurring scheduler cycle completed",
		"today", output.Today.Format(entity.DateLayout),
		"candidates", output.Candidates,
		"due", output.Due,
		"materialized", output.Materialized,
		"skipped", output.Skipped,
		"duration", elapsed,
	)
	return output, nil
}

func (s *Scheduler) observe(result string, output *recurring.MaterializeDueOutput, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.SchedulerCycles.WithLabelValues(result).Inc()
	if result == metrics.ResultLocked {
		return
	}
	s.metrics.SchedulerCycleDuration.Observe(elapsed.Seconds())
	if output != nil {
		s.metrics.SchedulerMaterialized.Add(float64(output.Materialized))
		s.metrics.SchedulerSkipped.Add(float64(output.Skipped))
	}
}
