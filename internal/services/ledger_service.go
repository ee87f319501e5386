package services

import (
	"context"
	"fmt"
	"strings"

	"financas/internal/amqp"
	"financas/internal/core"
	"financas/internal/log"
)

// EntryInput is an income or expense entry as typed by the user. Amount
// is a positive magnitude; the kind decides the stored sign.
type EntryInput struct {
	OwnerID  int64
	Kind     core.EntryKind
	Amount   core.Money
	Label    string
	Category string
	Date     string
}

func (in EntryInput) record() (core.Record, error) {
	if in.Kind != core.Expense && in.Kind != core.Income {
		return core.Record{}, core.ErrInvalidKind
	}
	if !in.Amount.IsPositive() {
		return core.Record{}, core.ErrInvalidAmount
	}
	r := core.Record{
		OwnerID:   in.OwnerID,
		Amount:    in.Kind.Signed(in.Amount),
		Label:     strings.TrimSpace(in.Label),
		Category:  strings.TrimSpace(in.Category),
		EntryDate: strings.TrimSpace(in.Date),
	}
	return r, r.Validate()
}

// LedgerService orchestrates record and goal writes, keeps the dashboard
// cache honest and raises goal alerts.
type LedgerService struct {
	store       LedgerStore
	publisher   AlertPublisher
	invalidator Invalidator
	logger      *log.Logger
}

type LedgerOption func(*LedgerService)

// WithPublisher enables goal alerts.
func WithPublisher(p AlertPublisher) LedgerOption {
	return func(s *LedgerService) { s.publisher = p }
}

// WithInvalidator registers the cache to drop after each write.
func WithInvalidator(inv Invalidator) LedgerOption {
	return func(s *LedgerService) { s.invalidator = inv }
}

// WithLedgerLogger replaces the process default logger.
func WithLedgerLogger(l *log.Logger) LedgerOption {
	return func(s *LedgerService) {
		if l != nil {
			s.logger = l.WithComponent(log.ComponentLedger)
		}
	}
}

func NewLedgerService(store LedgerStore, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{
		store:  store,
		logger: log.FromContext(context.Background()).WithComponent(log.ComponentLedger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEntry stores a new entry and returns its id.
func (s *LedgerService) AddEntry(ctx context.Context, in EntryInput) (int64, error) {
	r, err := in.record()
	if err != nil {
		return 0, err
	}

	id, err := s.store.CreateRecord(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("add entry: %w", err)
	}
	s.invalidate(in.OwnerID)

	if r.Kind() == core.Expense {
		s.checkGoal(ctx, r.OwnerID, r.Category, r.Amount.Abs())
	}
	return id, nil
}

// EditEntry replaces an entry owned by in.OwnerID.
func (s *LedgerService) EditEntry(ctx context.Context, id int64, in EntryInput) error {
	r, err := in.record()
	if err != nil {
		return err
	}

	old, err := s.ownedRecord(ctx, in.OwnerID, id)
	if err != nil {
		return err
	}

	r.ID = id
	if err := s.store.UpdateRecord(ctx, r); err != nil {
		return fmt.Errorf("edit entry: %w", err)
	}
	s.invalidate(in.OwnerID)

	if r.Kind() == core.Expense {
		delta := r.Amount.Abs()
		if old.Kind() == core.Expense && old.Category == r.Category {
			delta = delta.Sub(old.Amount.Abs())
		}
		s.checkGoal(ctx, r.OwnerID, r.Category, delta)
	}
	return nil
}

// RemoveEntry deletes an entry owned by ownerID.
func (s *LedgerService) RemoveEntry(ctx context.Context, ownerID, id int64) error {
	if _, err := s.ownedRecord(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.store.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}
	s.invalidate(ownerID)
	return nil
}

// Entries lists the owner's entries, newest entry date first.
func (s *LedgerService) Entries(ctx context.Context, ownerID int64) ([]core.Record, error) {
	records, err := s.store.ListRecords(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return records, nil
}

// SetGoal creates the goal for a category or updates the one already set.
func (s *LedgerService) SetGoal(ctx context.Context, ownerID int64, category string, target core.Money) (int64, error) {
	category = strings.TrimSpace(category)
	if err := (core.Goal{OwnerID: ownerID, Category: category, Target: target}).Validate(); err != nil {
		return 0, err
	}

	goals, err := s.store.ListGoals(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("set goal: %w", err)
	}

	var existing *core.Goal
	for i := range goals {
		if goals[i].Category == category {
			existing = &goals[i]
		}
	}

	var id int64
	if existing != nil {
		id = existing.ID
		err = s.store.UpdateGoal(ctx, id, category, target)
	} else {
		id, err = s.store.CreateGoal(ctx, ownerID, category, target)
	}
	if err != nil {
		return 0, fmt.Errorf("set goal: %w", err)
	}
	s.invalidate(ownerID)

	s.logger.InfoContext(ctx, "Goal set",
		log.NewFields().WithOwner(ownerID).WithGoal(id, category, target.Cents).ToSlice()...)

	wasOver := func(spent core.Money) bool {
		return existing != nil && spent.Cents > existing.Target.Cents
	}
	s.alertIfOver(ctx, ownerID, category, target, wasOver)
	return id, nil
}

// RemoveGoal deletes a goal owned by ownerID.
func (s *LedgerService) RemoveGoal(ctx context.Context, ownerID, id int64) error {
	goals, err := s.store.ListGoals(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("remove goal: %w", err)
	}
	found := false
	for _, g := range goals {
		if g.ID == id {
			found = true
			break
		}
	}
	if !found {
		return core.ErrGoalNotFound
	}

	if err := s.store.DeleteGoal(ctx, id); err != nil {
		return fmt.Errorf("remove goal: %w", err)
	}
	s.invalidate(ownerID)
	return nil
}

// Goals lists the owner's goals in creation order.
func (s *LedgerService) Goals(ctx context.Context, ownerID int64) ([]core.Goal, error) {
	goals, err := s.store.ListGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *LedgerService) ownedRecord(ctx context.Context, ownerID, id int64) (*core.Record, error) {
	r, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if r == nil || r.OwnerID != ownerID {
		return nil, core.ErrRecordNotFound
	}
	return r, nil
}

func (s *LedgerService) invalidate(ownerID int64) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ownerID)
	}
}

// checkGoal alerts when a write that added delta to the category's
// spending moved it from within the goal to over it.
func (s *LedgerService) checkGoal(ctx context.Context, ownerID int64, category string, delta core.Money) {
	if s.publisher == nil || !delta.IsPositive() {
		return
	}
	goals, err := s.store.GoalsByCategory(ctx, ownerID)
	if err != nil {
		s.logger.WarnContext(ctx, "Goal check skipped", log.FieldError, err, log.FieldOwnerID, ownerID)
		return
	}
	target, ok := goals[category]
	if !ok {
		return
	}
	wasOver := func(spent core.Money) bool {
		return spent.Sub(delta).Cents > target.Cents
	}
	s.alertIfOver(ctx, ownerID, category, target, wasOver)
}

func (s *LedgerService) alertIfOver(ctx context.Context, ownerID int64, category string, target core.Money, wasOver func(spent core.Money) bool) {
	if s.publisher == nil {
		return
	}
	records, err := s.store.ListRecords(ctx, ownerID)
	if err != nil {
		s.logger.WarnContext(ctx, "Goal check skipped", log.FieldError, err, log.FieldOwnerID, ownerID)
		return
	}

	spent := core.SpentInCategory(records, category)
	if spent.Cents <= target.Cents || wasOver(spent) {
		return
	}

	msg := amqp.NewGoalAlertMessage(ownerID, category, spent.Cents, target.Cents)
	if err := s.publisher.PublishGoalAlert(ctx, msg); err != nil {
		// the write already succeeded
		s.logger.LogError(ctx, "Failed to publish goal alert", err, log.OpPublish,
			log.NewFields().WithOwner(ownerID).WithGoal(0, category, target.Cents))
		return
	}
	s.logger.InfoContext(ctx, "Goal exceeded",
		log.FieldOwnerID, ownerID,
		log.FieldCategory, category,
		log.FieldMessageID, msg.ID)
}
