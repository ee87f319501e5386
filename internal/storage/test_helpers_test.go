package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"financas/internal/core"
)

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

// createTestStore opens a fresh store in a temporary directory.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), DBFileName)
	s, err := Open(context.Background(), path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestAccount(t *testing.T, s *Store, email string) int64 {
	t.Helper()
	id, err := s.CreateAccount(context.Background(), "Test User", email, "secret")
	if err != nil {
		t.Fatalf("CreateAccount(%q) failed: %v", email, err)
	}
	return id
}

func expense(owner int64, cents int64, date, category string) core.Record {
	return core.Record{
		OwnerID:   owner,
		Amount:    core.Money{Cents: -cents},
		Label:     category + " " + date,
		Category:  category,
		EntryDate: date,
	}
}
