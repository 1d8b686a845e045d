package recurring_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// memStore is an in-memory rule and ledger store with snapshot rollback.
type memStore struct {
	mu      sync.Mutex
	rules   map[uuid.UUID]entity.RecurringTransaction
	entries []entity.Transaction

	// failAppends makes the next n Append calls fail.
	failAppends int
	// loseAdvances acknowledges Advance without persisting it, like a crash
	// after the entry became durable but before the marker did.
	loseAdvances bool
}

func newMemStore(rules ...*entity.RecurringTransaction) *memStore {
	s := &memStore{rules: map[uuid.UUID]entity.RecurringTransaction{}}
	for _, r := range rules {
		s.rules[r.ID] = *r
	}
	return s
}

func (s *memStore) Create(_ context.Context, r *entity.RecurringTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[r.ID] = *r
	return nil
}

func (s *memStore) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.RecurringTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rules[id]
	if !ok || r.UserID != userID {
		return nil, domainerror.ErrRecurringNotFound
	}
	return &r, nil
}

func (s *memStore) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.RecurringTransaction
	for _, r := range s.rules {
		if r.UserID == userID {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *memStore) ListActive(_ context.Context, asOf time.Time) ([]*entity.RecurringTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.RecurringTransaction
	for _, r := range s.rules {
		if r.IsActiveOn(asOf) {
			r := r
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) Advance(_ context.Context, id uuid.UUID, seen, lastRunDate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rules[id]
	if !ok || !r.LastRunDate.Equal(seen) {
		return domainerror.ErrRecurringNotFound
	}
	if s.loseAdvances {
		return nil
	}
	r.LastRunDate = lastRunDate
	s.rules[id] = r
	return nil
}

func (s *memStore) Delete(_ context.Context, id, _ uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rules, id)
	return nil
}

func (s *memStore) rule(id uuid.UUID) entity.RecurringTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules[id]
}

func (s *memStore) ledgerLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// memLedger adapts memStore to the ledger repository contract.
type memLedger struct{ *memStore }

func (l memLedger) Append(_ context.Context, tx *entity.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failAppends > 0 {
		l.failAppends--
		return errors.New("disk full")
	}
	l.entries = append(l.entries, *tx)
	return nil
}

func (l memLedger) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (l memLedger) FindByFilter(context.Context, entity.TransactionFilter) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (l memLedger) Update(context.Context, *entity.Transaction) error { return nil }

func (l memLedger) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

// WithinTransaction restores the store when fn fails.
func (s *memStore) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	s.mu.Lock()
	rules := make(map[uuid.UUID]entity.RecurringTransaction, len(s.rules))
	for k, v := range s.rules {
		rules[k] = v
	}
	n := len(s.entries)
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.rules = rules
		s.entries = s.entries[:n]
		s.mu.Unlock()
		return err
	}
	return nil
}

type passthroughRetrier struct{}

func (passthroughRetrier) Retry(_ context.Context, op func() error) error { return op() }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newCycle(store *memStore, clock *fixedClock) *recurring.MaterializeDueUseCase {
	return recurring.NewMaterializeDueUseCase(store, memLedger{store}, nil, store, passthroughRetrier{}, nil, nil, clock)
}

func monthlyRent(t *testing.T) *entity.RecurringTransaction {
	return entity.NewRecurringTransaction(
		uuid.New(),
		"Rent",
		decimal.NewFromInt(900),
		"Housing",
		entity.TransactionTypeExpense,
		entity.FrequencyMonthly,
		mustDate(t, "2024-01-01"),
		nil,
	)
}

func TestCycle_MonthlyRuleAcrossFebruary(t *testing.T) {
	r := monthlyRent(t)
	require.Equal(t, mustDate(t, "2024-01-01"), r.LastRunDate)

	store := newMemStore(r)
	clock := &fixedClock{now: mustDate(t, "2024-02-15").Add(9 * time.Hour)}
	uc := newCycle(store, clock)

	out, err := uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)
	require.Equal(t, 1, out.Materialized)

	require.Equal(t, 1, store.ledgerLen())
	assert.Equal(t, mustDate(t, "2024-02-15"), store.entries[0].Date)
	assert.Equal(t, "Auto-generated from Recurring (Monthly)", store.entries[0].Note)
	assert.Equal(t, mustDate(t, "2024-02-15"), store.rule(r.ID).LastRunDate)

	// Same instant again: nothing left to do.
	out, err = uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Due)
	assert.Equal(t, 1, store.ledgerLen())

	// Later in the same month: still not due.
	clock.now = mustDate(t, "2024-02-20")
	out, err = uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Due)
	assert.Equal(t, 1, store.ledgerLen())
	assert.Equal(t, mustDate(t, "2024-02-15"), store.rule(r.ID).LastRunDate)
}

func TestCycle_WritesExactlyTheDueRules(t *testing.T) {
	today := mustDate(t, "2024-05-20")
	due1 := rule(t, entity.FrequencyDaily, "2024-05-01", "2024-05-19")
	due2 := rule(t, entity.FrequencyWeekly, "2024-05-01", "2024-05-13")
	notDue1 := rule(t, entity.FrequencyWeekly, "2024-05-01", "2024-05-14")
	notDue2 := rule(t, entity.FrequencyMonthly, "2024-05-01", "2024-05-01")
	notDue3 := rule(t, "Quarterly", "2024-01-01", "2024-01-01")
	future := rule(t, entity.FrequencyDaily, "2024-06-01", "2024-06-01")

	store := newMemStore(due1, due2, notDue1, notDue2, notDue3, future)
	uc := newCycle(store, &fixedClock{now: today})

	out, err := uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Candidates)
	assert.Equal(t, 2, out.Materialized)
	assert.Equal(t, 2, store.ledgerLen())

	assert.Equal(t, today, store.rule(due1.ID).LastRunDate)
	assert.Equal(t, today, store.rule(due2.ID).LastRunDate)
	assert.Equal(t, mustDate(t, "2024-05-14"), store.rule(notDue1.ID).LastRunDate)
	assert.Equal(t, mustDate(t, "2024-05-01"), store.rule(notDue2.ID).LastRunDate)
	assert.Equal(t, mustDate(t, "2024-01-01"), store.rule(notDue3.ID).LastRunDate)
	assert.Equal(t, mustDate(t, "2024-06-01"), store.rule(future.ID).LastRunDate)
}

func TestCycle_FailedAppendRollsBackAdvance(t *testing.T) {
	r := monthlyRent(t)
	store := newMemStore(r)
	store.failAppends = 1
	uc := newCycle(store, &fixedClock{now: mustDate(t, "2024-02-15")})

	_, err := uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.Error(t, err)
	assert.Equal(t, 0, store.ledgerLen())
	assert.Equal(t, mustDate(t, "2024-01-01"), store.rule(r.ID).LastRunDate)

	// Next interval retries the rule and produces exactly one entry.
	out, err := uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Materialized)
	assert.Equal(t, 1, store.ledgerLen())
}

// Without a (rule, period) key, losing the marker after the entry became
// durable materializes the same period again on the next cycle.
func TestCycle_LostAdvanceDuplicatesPeriod(t *testing.T) {
	r := monthlyRent(t)
	store := newMemStore(r)
	store.loseAdvances = true
	uc := newCycle(store, &fixedClock{now: mustDate(t, "2024-02-15")})

	_, err := uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), recurring.MaterializeDueInput{})
	require.NoError(t, err)

	require.Equal(t, 2, store.ledgerLen())
	assert.Equal(t, store.entries[0].Date, store.entries[1].Date)
	assert.Equal(t, *store.entries[0].RecurringRuleID, *store.entries[1].RecurringRuleID)
}
