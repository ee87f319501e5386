package backend

import (
	"context"
	"fmt"
	"time"

	"financas/internal/amqp"
	"financas/internal/cache"
	"financas/internal/config"
	"financas/internal/core"
	"financas/internal/log"
	"financas/internal/services"
	"financas/internal/storage"
)

const alertDialTimeout = 10 * time.Second

// Factory builds backends from configuration.
type Factory struct {
	logger       *log.Logger
	storeOptions []storage.Option
	accountOpts  []services.AccountOption
}

type FactoryOption func(*Factory)

// WithStoreOptions forwards options to storage.Open.
func WithStoreOptions(opts ...storage.Option) FactoryOption {
	return func(f *Factory) { f.storeOptions = append(f.storeOptions, opts...) }
}

// WithAccountOptions forwards options to the account service.
func WithAccountOptions(opts ...services.AccountOption) FactoryOption {
	return func(f *Factory) { f.accountOpts = append(f.accountOpts, opts...) }
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger, opts ...FactoryOption) *Factory {
	if logger == nil {
		logger = log.FromContext(context.Background())
	}
	f := &Factory{logger: logger.WithComponent(log.ComponentApp)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create opens the store under cfg.DataDir and wires the services. AMQP
// is optional: when it cannot be reached the backend runs without alerts.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Backend, error) {
	dbPath := storage.PathIn(cfg.DataDir)
	store, err := storage.Open(ctx, dbPath, f.storeOptions...)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	summaries := cache.NewLRUCache[int64, core.Summary](cfg.DashboardCacheSize, cfg.DashboardCacheTTL)
	caches := cache.NewManager()
	caches.Register(summaries)

	accountOpts := append([]services.AccountOption{services.WithAccountLogger(f.logger)}, f.accountOpts...)
	b := &Backend{
		Store:     store,
		Accounts:  services.NewAccountService(store, accountOpts...),
		Dashboard: services.NewDashboardService(store, summaries, services.WithDashboardLogger(f.logger)),
		summaries: summaries,
		caches:    caches,
	}

	ledgerOpts := []services.LedgerOption{
		services.WithInvalidator(b.Dashboard),
		services.WithLedgerLogger(f.logger),
	}
	if cfg.AlertsEnabled() {
		dialCtx, cancel := context.WithTimeout(ctx, alertDialTimeout)
		client, err := amqp.NewClient(dialCtx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		cancel()
		if err != nil {
			f.logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without goal alerts", log.FieldError, err)
		} else {
			b.Alerts = client
			ledgerOpts = append(ledgerOpts, services.WithPublisher(client))
			f.logger.InfoContext(ctx, "Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}
	b.Ledger = services.NewLedgerService(store, ledgerOpts...)

	f.logger.InfoContext(ctx, "Initialized backend",
		log.FieldDBPath, dbPath,
		"alerts_enabled", b.Alerts != nil)

	return b, nil
}
