package storage

import (
	"context"
	"fmt"
	"log/slog"

	"financas/internal/core"
)

// CreateGoal stores a spending ceiling for a category. Several goals may
// exist for the same category; see GoalsByCategory.
func (s *Store) CreateGoal(ctx context.Context, ownerID int64, category string, target core.Money) (int64, error) {
	q, err := s.q()
	if err != nil {
		return 0, err
	}
	if ownerID <= 0 {
		return 0, core.ErrInvalidOwnerID
	}
	if err := (core.Goal{Category: category, Target: target}).Validate(); err != nil {
		return 0, err
	}

	id, err := q.CreateGoal(ctx, CreateGoalParams{
		UserID:    ownerID,
		Categoria: category,
		ValorMeta: target.Float64(),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, core.ErrOwnerNotFound
		}
		return 0, fmt.Errorf("create goal: %w", err)
	}

	slog.InfoContext(ctx, "Goal created",
		"id", id,
		"owner_id", ownerID,
		"category", category,
		"target_cents", target.Cents)

	return id, nil
}

// UpdateGoal replaces category and target. A missing id is a no-op.
func (s *Store) UpdateGoal(ctx context.Context, id int64, category string, target core.Money) error {
	q, err := s.q()
	if err != nil {
		return err
	}
	if err := (core.Goal{Category: category, Target: target}).Validate(); err != nil {
		return err
	}

	n, err := q.UpdateGoal(ctx, UpdateGoalParams{
		Categoria: category,
		ValorMeta: target.Float64(),
		ID:        id,
	})
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}

	slog.InfoContext(ctx, "Goal updated", "id", id, "rows", n)
	return nil
}

// DeleteGoal removes the goal if present.
func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	q, err := s.q()
	if err != nil {
		return err
	}

	n, err := q.DeleteGoal(ctx, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	slog.InfoContext(ctx, "Goal deleted", "id", id, "rows", n)
	return nil
}

// ListGoals returns the owner's goals ordered by id.
func (s *Store) ListGoals(ctx context.Context, ownerID int64) ([]core.Goal, error) {
	q, err := s.q()
	if err != nil {
		return nil, err
	}

	rows, err := q.ListGoalsByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]core.Goal, len(rows))
	for i, g := range rows {
		goals[i] = core.Goal{
			ID:       g.ID,
			OwnerID:  g.UserID,
			Category: g.Categoria,
			Target:   core.FromFloat(g.ValorMeta),
		}
	}
	return goals, nil
}

// GoalsByCategory maps each category to its target. When a category has
// more than one goal the one with the highest id wins.
func (s *Store) GoalsByCategory(ctx context.Context, ownerID int64) (core.GoalMap, error) {
	goals, err := s.ListGoals(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	m := make(core.GoalMap, len(goals))
	for _, g := range goals {
		m[g.Category] = g.Target
	}
	return m, nil
}
