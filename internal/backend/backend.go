package backend

import (
	"errors"
	"fmt"

	"financas/internal/amqp"
	"financas/internal/cache"
	"financas/internal/core"
	"financas/internal/services"
	"financas/internal/storage"
)

// Backend bundles the opened store and the services built on top of it.
type Backend struct {
	Store     *storage.Store
	Accounts  *services.AccountService
	Ledger    *services.LedgerService
	Dashboard *services.DashboardService

	// Alerts is nil when AMQP is disabled or unreachable.
	Alerts *amqp.Client

	summaries *cache.LRUCache[int64, core.Summary]
	caches    *cache.Manager
}

// Caches returns the cache manager so long-running processes can start
// periodic cleanup.
func (b *Backend) Caches() *cache.Manager {
	return b.caches
}

// Close releases the AMQP connection and the store.
func (b *Backend) Close() error {
	if b == nil {
		return nil
	}
	var errs []error

	if b.caches != nil {
		b.caches.Stop()
	}
	if b.Alerts != nil {
		if err := b.Alerts.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}
	if b.Store != nil {
		if err := b.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close backend: %w", errors.Join(errs...))
	}
	return nil
}
