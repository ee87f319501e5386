package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), storage.DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newOwner(t *testing.T, store *storage.Store, email string) int64 {
	t.Helper()
	id, err := NewAccountService(store, WithHashCost(bcrypt.MinCost)).
		Register(context.Background(), RegisterInput{Name: "Ana", Email: email, Password: "segredo"})
	require.NoError(t, err)
	return id
}

func expenseInput(owner int64, cents int64, category, date string) EntryInput {
	return EntryInput{
		OwnerID:  owner,
		Kind:     core.Expense,
		Amount:   core.Money{Cents: cents},
		Label:    "gasto " + category,
		Category: category,
		Date:     date,
	}
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []*amqp.GoalAlertMessage
	err  error
}

func (f *fakePublisher) PublishGoalAlert(_ context.Context, msg *amqp.GoalAlertMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakePublisher) sent() []*amqp.GoalAlertMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*amqp.GoalAlertMessage(nil), f.msgs...)
}

type countingInvalidator struct {
	mu    sync.Mutex
	calls map[int64]int
}

func (c *countingInvalidator) Invalidate(ownerID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[int64]int{}
	}
	c.calls[ownerID]++
}

func (c *countingInvalidator) count(ownerID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[ownerID]
}

// failingDashboardStore fails goal lookups to exercise error paths.
type failingDashboardStore struct {
	DashboardStore
	goalsErr error
	calls    int
	mu       sync.Mutex
}

func (f *failingDashboardStore) ListRecords(ctx context.Context, ownerID int64) ([]core.Record, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.DashboardStore == nil {
		return nil, nil
	}
	return f.DashboardStore.ListRecords(ctx, ownerID)
}

func (f *failingDashboardStore) GoalsByCategory(ctx context.Context, ownerID int64) (core.GoalMap, error) {
	if f.goalsErr != nil {
		return nil, f.goalsErr
	}
	return f.DashboardStore.GoalsByCategory(ctx, ownerID)
}

var errBroker = errors.New("broker down")
