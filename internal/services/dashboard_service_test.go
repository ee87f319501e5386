package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financas/internal/cache"
	"financas/internal/core"
)

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := newOwner(t, store, "ana@example.com")
	ledger := NewLedgerService(store)

	_, err := ledger.AddEntry(ctx, EntryInput{
		OwnerID: owner, Kind: core.Income, Amount: core.Money{Cents: 10000},
		Label: "Salário", Category: "Salário", Date: "2024-01-01",
	})
	require.NoError(t, err)
	_, err = ledger.AddEntry(ctx, expenseInput(owner, 5000, "Alimentação", "2024-01-02"))
	require.NoError(t, err)
	_, err = ledger.SetGoal(ctx, owner, "Alimentação", core.Money{Cents: 3000})
	require.NoError(t, err)

	sum, err := NewDashboardService(store, nil).Dashboard(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, int64(10000), sum.TotalIncome.Cents)
	assert.Equal(t, int64(5000), sum.TotalExpense.Cents)
	assert.Equal(t, int64(5000), sum.Balance.Cents)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, sum.Daily.Labels)
	require.Len(t, sum.ByCategory, 1)
	assert.True(t, sum.ByCategory[0].OverGoal)
	assert.True(t, sum.ByCategory[0].HasGoal)
}

func TestDashboardService_CachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := newOwner(t, store, "ana@example.com")

	lru := cache.NewLRUCache[int64, core.Summary](8, time.Hour)
	dash := NewDashboardService(store, lru)
	ledger := NewLedgerService(store, WithInvalidator(dash))

	sum, err := dash.Dashboard(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Count)
	assert.Equal(t, 1, lru.Size())

	// a write that bypasses the service is not seen until invalidation
	_, err = store.CreateRecord(ctx, core.Record{
		OwnerID: owner, Amount: core.Money{Cents: -100}, Label: "café", Category: "Alimentação", EntryDate: "2024-01-01",
	})
	require.NoError(t, err)
	sum, err = dash.Dashboard(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Count)

	_, err = ledger.AddEntry(ctx, expenseInput(owner, 200, "Alimentação", "2024-01-02"))
	require.NoError(t, err)
	sum, err = dash.Dashboard(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, int64(300), sum.TotalExpense.Cents)
}

func TestDashboardService_EmptyOwner(t *testing.T) {
	sum, err := NewDashboardService(newTestStore(t), nil).Dashboard(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Count)
	assert.NotNil(t, sum.ByCategory)
	assert.NotNil(t, sum.Daily.Labels)
}

func TestDashboardService_LoadError(t *testing.T) {
	store := &failingDashboardStore{goalsErr: errBroker}
	lru := cache.NewLRUCache[int64, core.Summary](8, time.Hour)

	_, err := NewDashboardService(store, lru).Dashboard(context.Background(), 1)
	require.ErrorIs(t, err, errBroker)
	assert.Equal(t, 0, lru.Size(), "failures are not cached")
}

func TestDashboardService_NotInitializedStore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	_, err := NewDashboardService(store, nil).Dashboard(context.Background(), 1)
	assert.ErrorIs(t, err, core.ErrNotInitialized)
}
