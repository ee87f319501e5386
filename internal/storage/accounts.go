package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"financas/internal/core"
)

// CreateAccount inserts a user. A taken email is reported by the UNIQUE
// constraint and surfaces as core.ErrDuplicateEmail.
func (s *Store) CreateAccount(ctx context.Context, name, email, password string) (int64, error) {
	q, err := s.q()
	if err != nil {
		return 0, err
	}
	if err := (core.Account{Name: name, Email: email, Password: password}).Validate(); err != nil {
		return 0, err
	}

	id, err := q.CreateUser(ctx, CreateUserParams{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, core.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create account: %w", err)
	}

	slog.InfoContext(ctx, "Account created", "id", id, "email", email)
	return id, nil
}

// FindByEmail returns nil, nil when no account has the email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	q, err := s.q()
	if err != nil {
		return nil, err
	}

	u, err := q.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	a := toAccount(u)
	return &a, nil
}

// GetAccount returns nil, nil when the id does not exist.
func (s *Store) GetAccount(ctx context.Context, id int64) (*core.Account, error) {
	q, err := s.q()
	if err != nil {
		return nil, err
	}

	u, err := q.GetUser(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	a := toAccount(u)
	return &a, nil
}

// ListAccounts returns every account in insertion order.
func (s *Store) ListAccounts(ctx context.Context) ([]core.Account, error) {
	q, err := s.q()
	if err != nil {
		return nil, err
	}

	users, err := q.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]core.Account, len(users))
	for i, u := range users {
		accounts[i] = toAccount(u)
	}
	return accounts, nil
}

// DeleteAccount removes the account together with its records and goals.
// Deleting a missing id is a no-op.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	q, err := s.q()
	if err != nil {
		return err
	}

	n, err := q.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	slog.InfoContext(ctx, "Account deleted", "id", id, "rows", n)
	return nil
}

func toAccount(u User) core.Account {
	return core.Account{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}
