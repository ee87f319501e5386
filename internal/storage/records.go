package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"financas/internal/core"
)

// CreateRecord inserts a ledger entry stamped with the store clock and
// returns its id. An unknown owner surfaces as core.ErrOwnerNotFound.
func (s *Store) CreateRecord(ctx context.Context, r core.Record) (int64, error) {
	q, err := s.q()
	if err != nil {
		return 0, err
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}

	id, err := q.CreateAccountRecord(ctx, CreateAccountRecordParams{
		UserID:       r.OwnerID,
		QuantiaGasta: r.Amount.Float64(),
		NomeConta:    r.Label,
		Categoria:    r.Category,
		DataRegistro: r.EntryDate,
		CreatedAt:    s.timestamp(),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, core.ErrOwnerNotFound
		}
		return 0, fmt.Errorf("create record: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to SQLite",
		"id", id,
		"owner_id", r.OwnerID,
		"amount_cents", r.Amount.Cents,
		"category", r.Category,
		"entry_date", r.EntryDate)

	return id, nil
}

// GetRecord returns nil, nil when the id does not exist.
func (s *Store) GetRecord(ctx context.Context, id int64) (*core.Record, error) {
	q, err := s.q()
	if err != nil {
		return nil, err
	}

	row, err := q.GetAccountRecord(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	r := toRecord(row)
	return &r, nil
}

// ListRecords returns the owner's records, newest entry date first and, on
// equal dates, most recently created first. Unknown owners yield an empty slice.
func (s *Store) ListRecords(ctx context.Context, ownerID int64) ([]core.Record, error) {
	q, err := s.q()
	if err != nil {
		return nil, err
	}

	rows, err := q.ListAccountRecordsByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]core.Record, len(rows))
	for i, row := range rows {
		records[i] = toRecord(row)
	}
	return records, nil
}

// UpdateRecord replaces every field of the record with the given id.
// A missing id is not an error; nothing is written.
func (s *Store) UpdateRecord(ctx context.Context, r core.Record) error {
	q, err := s.q()
	if err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	n, err := q.UpdateAccountRecord(ctx, UpdateAccountRecordParams{
		UserID:       r.OwnerID,
		QuantiaGasta: r.Amount.Float64(),
		NomeConta:    r.Label,
		Categoria:    r.Category,
		DataRegistro: r.EntryDate,
		ID:           r.ID,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.ErrOwnerNotFound
		}
		return fmt.Errorf("update record: %w", err)
	}

	if n == 0 {
		slog.DebugContext(ctx, "Record update matched no rows", "id", r.ID)
		return nil
	}
	slog.InfoContext(ctx, "Record updated", "id", r.ID, "amount_cents", r.Amount.Cents)
	return nil
}

// DeleteRecord removes the record if present.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	q, err := s.q()
	if err != nil {
		return err
	}

	n, err := q.DeleteAccountRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	slog.InfoContext(ctx, "Record deleted", "id", id, "rows", n)
	return nil
}

func toRecord(row AccountRecord) core.Record {
	return core.Record{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Amount:    core.FromFloat(row.QuantiaGasta),
		Label:     row.NomeConta,
		Category:  row.Categoria,
		EntryDate: row.DataRegistro,
		CreatedAt: parseCreatedAt(row.CreatedAt),
	}
}
