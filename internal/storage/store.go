// Package storage is the embedded SQLite store: schema setup plus typed
// operations over users, account records and goals.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"financas/internal/core"

	_ "modernc.org/sqlite"
)

// DBFileName is the fixed name of the database file inside the data directory.
const DBFileName = "users.db"

// createdAtLayout matches strftime('%Y-%m-%d %H:%M:%f') used as column default.
const createdAtLayout = "2006-01-02 15:04:05.000"

var connPragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// Store owns the single database connection of the process. The zero value
// and a closed Store reject every operation with core.ErrNotInitialized.
type Store struct {
	mu      sync.RWMutex
	db      *sql.DB
	queries *Queries
	path    string
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// PathIn returns the database path inside dataDir.
func PathIn(dataDir string) string {
	return filepath.Join(dataDir, DBFileName)
}

// Open opens (creating if absent) the database at dbPath and makes sure the
// schema exists. It is safe to call on every start; existing data is kept.
// Any failure is reported as core.ErrStorageUnavailable.
func Open(ctx context.Context, dbPath string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %w", core.ErrStorageUnavailable, err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %w", core.ErrStorageUnavailable, err)
	}

	// SQLite has one writer; a single connection also keeps pragmas in effect.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %w", core.ErrStorageUnavailable, err)
	}

	s := &Store{
		db:      db,
		queries: New(db),
		path:    dbPath,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	slog.InfoContext(ctx, "SQLite store opened", "path", dbPath)
	return s, nil
}

func dsn(path string) string {
	q := ""
	for i, p := range connPragmas {
		if i == 0 {
			q += "?"
		} else {
			q += "&"
		}
		q += "_pragma=" + p
	}
	return path + q
}

// Close releases the connection. Later calls fail with core.ErrNotInitialized.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.queries = nil
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func (s *Store) q() (*Queries, error) {
	if s == nil {
		return nil, core.ErrNotInitialized
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.queries == nil {
		return nil, core.ErrNotInitialized
	}
	return s.queries, nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(createdAtLayout)
}

func parseCreatedAt(v string) time.Time {
	t, err := time.Parse(createdAtLayout, v)
	if err != nil {
		// Rows written by other tools may use plain CURRENT_TIMESTAMP.
		t, _ = time.Parse(time.DateTime, v)
	}
	return t
}
