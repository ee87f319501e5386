package services

import (
	"context"

	"financas/internal/amqp"
	"financas/internal/core"
)

// AccountStore is the subset of *storage.Store the account service needs.
type AccountStore interface {
	CreateAccount(ctx context.Context, name, email, password string) (int64, error)
	FindByEmail(ctx context.Context, email string) (*core.Account, error)
	ListAccounts(ctx context.Context) ([]core.Account, error)
}

// RecordStore is the record half of *storage.Store.
type RecordStore interface {
	CreateRecord(ctx context.Context, r core.Record) (int64, error)
	GetRecord(ctx context.Context, id int64) (*core.Record, error)
	ListRecords(ctx context.Context, ownerID int64) ([]core.Record, error)
	UpdateRecord(ctx context.Context, r core.Record) error
	DeleteRecord(ctx context.Context, id int64) error
}

// GoalStore is the goal half of *storage.Store.
type GoalStore interface {
	CreateGoal(ctx context.Context, ownerID int64, category string, target core.Money) (int64, error)
	UpdateGoal(ctx context.Context, id int64, category string, target core.Money) error
	DeleteGoal(ctx context.Context, id int64) error
	ListGoals(ctx context.Context, ownerID int64) ([]core.Goal, error)
	GoalsByCategory(ctx context.Context, ownerID int64) (core.GoalMap, error)
}

// LedgerStore combines the record and goal stores.
type LedgerStore interface {
	RecordStore
	GoalStore
}

// AlertPublisher delivers goal alerts. *amqp.Client implements it.
type AlertPublisher interface {
	PublishGoalAlert(ctx context.Context, msg *amqp.GoalAlertMessage) error
}

// Invalidator drops cached data derived from an owner's ledger.
type Invalidator interface {
	Invalidate(ownerID int64)
}
