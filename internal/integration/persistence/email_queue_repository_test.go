package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

func TestEmailQueueRepository_ClaimAndRetry(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewEmailQueueRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ready := entity.NewEmailJob(entity.TemplatePasswordReset, "a@example.com", "alice", "Reset", map[string]interface{}{"reset_url": "https://x"})
	ready.ScheduledAt = now.Add(-time.Minute)
	later := entity.NewEmailJob(entity.TemplatePasswordReset, "b@example.com", "bob", "Reset", nil)
	later.ScheduledAt = now.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, ready))
	require.NoError(t, repo.Create(ctx, later))

	claimed, err := repo.ClaimPendingJobs(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, ready.ID, claimed[0].ID)
	assert.Equal(t, entity.EmailStatusProcessing, claimed[0].Status)
	assert.Equal(t, "https://x", claimed[0].TemplateData["reset_url"])

	again, err := repo.ClaimPendingJobs(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, again)

	job := claimed[0]
	job.MarkFailed(errors.New("timeout"), false, now)
	require.NoError(t, repo.Update(ctx, job))

	retried, err := repo.ClaimPendingJobs(ctx, now.Add(2*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, retried, 1)
	assert.Equal(t, 1, retried[0].Attempts)

	retried[0].MarkSent("re_123", now.Add(-48*time.Hour))
	require.NoError(t, repo.Update(ctx, retried[0]))

	deleted, err := repo.DeleteSentBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}
