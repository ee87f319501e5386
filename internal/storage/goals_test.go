package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financas/internal/core"
)

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestAccount(t, s, "goal@example.com")

	id, err := s.CreateGoal(ctx, owner, "Alimentação", core.Money{Cents: 50000})
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx, owner)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, core.Goal{ID: id, OwnerID: owner, Category: "Alimentação", Target: core.Money{Cents: 50000}}, goals[0])
}

func TestCreateGoal_Errors(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestAccount(t, s, "goalerr@example.com")

	_, err := s.CreateGoal(ctx, 9999, "Lazer", core.Money{Cents: 100})
	assert.ErrorIs(t, err, core.ErrOwnerNotFound)

	_, err = s.CreateGoal(ctx, owner, "", core.Money{Cents: 100})
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = s.CreateGoal(ctx, owner, "Lazer", core.Money{Cents: 0})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)

	_, err = s.CreateGoal(ctx, 0, "Lazer", core.Money{Cents: 100})
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestAccount(t, s, "goalupd@example.com")

	id, err := s.CreateGoal(ctx, owner, "Lazer", core.Money{Cents: 100})
	require.NoError(t, err)

	require.NoError(t, s.UpdateGoal(ctx, id, "Transporte", core.Money{Cents: 7050}))
	require.NoError(t, s.UpdateGoal(ctx, id+10, "Saúde", core.Money{Cents: 1}), "missing id is a no-op")
	assert.ErrorIs(t, s.UpdateGoal(ctx, id, "Transporte", core.Money{Cents: -1}), core.ErrValidation)

	goals, err := s.ListGoals(ctx, owner)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Transporte", goals[0].Category)
	assert.Equal(t, int64(7050), goals[0].Target.Cents)
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestAccount(t, s, "goaldel@example.com")

	id, err := s.CreateGoal(ctx, owner, "Lazer", core.Money{Cents: 100})
	require.NoError(t, err)

	require.NoError(t, s.DeleteGoal(ctx, id))
	require.NoError(t, s.DeleteGoal(ctx, id), "deleting twice is a no-op")

	goals, err := s.ListGoals(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalsByCategory(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	owner := createTestAccount(t, s, "goalmap@example.com")
	other := createTestAccount(t, s, "othermap@example.com")

	_, err := s.CreateGoal(ctx, owner, "Lazer", core.Money{Cents: 100})
	require.NoError(t, err)
	_, err = s.CreateGoal(ctx, owner, "Saúde", core.Money{Cents: 300})
	require.NoError(t, err)
	_, err = s.CreateGoal(ctx, owner, "Lazer", core.Money{Cents: 200})
	require.NoError(t, err)
	_, err = s.CreateGoal(ctx, other, "Lazer", core.Money{Cents: 999})
	require.NoError(t, err)

	m, err := s.GoalsByCategory(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, core.GoalMap{
		"Lazer": {Cents: 200}, // highest id wins
		"Saúde": {Cents: 300},
	}, m)

	empty, err := s.GoalsByCategory(ctx, 4242)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
