package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"financas/internal/cache"
	"financas/internal/core"
	"financas/internal/log"
)

// DashboardStore is what the dashboard reads.
type DashboardStore interface {
	ListRecords(ctx context.Context, ownerID int64) ([]core.Record, error)
	GoalsByCategory(ctx context.Context, ownerID int64) (core.GoalMap, error)
}

// DashboardService builds per-owner summaries and caches them until the
// owner's ledger changes or the entry expires.
type DashboardService struct {
	store  DashboardStore
	cache  cache.Cache[int64, core.Summary]
	logger *log.Logger
}

type DashboardOption func(*DashboardService)

// WithDashboardLogger replaces the process default logger.
func WithDashboardLogger(l *log.Logger) DashboardOption {
	return func(s *DashboardService) {
		if l != nil {
			s.logger = l.WithComponent(log.ComponentDashboard)
		}
	}
}

// NewDashboardService creates the service; a nil cache disables caching.
func NewDashboardService(store DashboardStore, c cache.Cache[int64, core.Summary], opts ...DashboardOption) *DashboardService {
	s := &DashboardService{
		store:  store,
		cache:  c,
		logger: log.FromContext(context.Background()).WithComponent(log.ComponentDashboard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dashboard returns the owner's summary.
func (s *DashboardService) Dashboard(ctx context.Context, ownerID int64) (core.Summary, error) {
	if s.cache != nil {
		if sum, ok := s.cache.Get(ownerID); ok {
			s.logger.DebugContext(ctx, "Dashboard cache hit", log.FieldOwnerID, ownerID)
			return sum, nil
		}
	}

	var (
		records []core.Record
		goals   core.GoalMap
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.store.ListRecords(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.store.GoalsByCategory(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return core.Summary{}, fmt.Errorf("load dashboard: %w", err)
	}

	sum := core.Summarize(records, goals)
	if s.cache != nil {
		s.cache.Set(ownerID, sum)
	}
	return sum, nil
}

// Invalidate drops the owner's cached summary.
func (s *DashboardService) Invalidate(ownerID int64) {
	if s.cache != nil {
		s.cache.Delete(ownerID)
	}
}
