package worker

import (
	"context"
	"fmt"
	"io"
	"sync"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/log"
)

// AccountLookup resolves the owner named in an alert.
type AccountLookup interface {
	GetAccount(ctx context.Context, id int64) (*core.Account, error)
}

// SummaryReader returns the owner's current dashboard.
type SummaryReader interface {
	Dashboard(ctx context.Context, ownerID int64) (core.Summary, error)
}

// Alerts are raised by writes in other processes, whose cache
// invalidations never reach this one. Readers that cache are
// invalidated before every check.
type cachedSummaryReader interface {
	SummaryReader
	Invalidate(ownerID int64)
}

// AlertWorker handles goal alerts consumed from AMQP. Alerts whose
// category is no longer over its goal are dropped as stale.
type AlertWorker struct {
	accounts  AccountLookup
	dashboard SummaryReader
	out       io.Writer
	logger    *log.Logger

	mu      sync.Mutex
	handled int
	stale   int
}

type Option func(*AlertWorker)

// WithLogger replaces the process default logger.
func WithLogger(l *log.Logger) Option {
	return func(w *AlertWorker) {
		if l != nil {
			w.logger = l.WithComponent(log.ComponentWorker)
		}
	}
}

// NewAlertWorker creates a worker that writes one line per live alert to out.
func NewAlertWorker(accounts AccountLookup, dashboard SummaryReader, out io.Writer, opts ...Option) *AlertWorker {
	if out == nil {
		out = io.Discard
	}
	w := &AlertWorker{
		accounts:  accounts,
		dashboard: dashboard,
		out:       out,
		logger:    log.FromContext(context.Background()).WithComponent(log.ComponentWorker),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// HandleGoalAlert processes a single goal alert. A returned error makes
// the consumer requeue the message.
func (w *AlertWorker) HandleGoalAlert(ctx context.Context, msg *amqp.GoalAlertMessage) error {
	w.logger.InfoContext(ctx, "Processing goal alert",
		log.FieldMessageID, msg.ID,
		log.FieldOwnerID, msg.OwnerID,
		log.FieldCategory, msg.Category)

	acc, err := w.accounts.GetAccount(ctx, msg.OwnerID)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if acc == nil {
		w.logger.WarnContext(ctx, "Goal alert for unknown owner dropped",
			log.FieldMessageID, msg.ID,
			log.FieldOwnerID, msg.OwnerID)
		w.record(true)
		return nil
	}

	if c, ok := w.dashboard.(cachedSummaryReader); ok {
		c.Invalidate(msg.OwnerID)
	}
	sum, err := w.dashboard.Dashboard(ctx, msg.OwnerID)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	var current *core.CategorySpending
	for i := range sum.ByCategory {
		if sum.ByCategory[i].Category == msg.Category {
			current = &sum.ByCategory[i]
			break
		}
	}
	if current == nil || !current.HasGoal || !current.OverGoal {
		w.logger.InfoContext(ctx, "Stale goal alert dropped",
			log.FieldMessageID, msg.ID,
			log.FieldOwnerID, msg.OwnerID,
			log.FieldCategory, msg.Category)
		w.record(true)
		return nil
	}

	w.logger.WarnContext(ctx, "Goal exceeded",
		log.FieldMessageID, msg.ID,
		log.FieldOwnerID, acc.ID,
		log.FieldEmail, acc.Email,
		log.FieldCategory, current.Category,
		log.FieldAmountCents, current.Spent.Cents,
		log.FieldTargetCents, current.Goal.Cents)

	over := current.Spent.Sub(current.Goal)
	if _, err := fmt.Fprintf(w.out, "%s <%s>: %s %s / meta %s (+%s)\n",
		acc.Name, acc.Email, current.Category, current.Spent, current.Goal, over); err != nil {
		return fmt.Errorf("write alert: %w", err)
	}
	w.record(false)
	return nil
}

func (w *AlertWorker) record(stale bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handled++
	if stale {
		w.stale++
	}
}

// Stats returns how many alerts were handled and how many of them were stale.
func (w *AlertWorker) Stats() (handled, stale int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handled, w.stale
}
