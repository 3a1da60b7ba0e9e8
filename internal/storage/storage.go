package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Storage owns the SQLite handle and the table accessors built on it.
type Storage struct {
	DB       *sql.DB
	Expenses *expense.Reader
}

// NewStorage opens the SQLite database configured in the environment.
func NewStorage(env *config.Config) (*Storage, error) {
	return Open(env.DBPath)
}

// Open opens a SQLite database at path. WAL and a busy timeout let
// short-lived writers queue instead of failing under concurrent dispatch.
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return &Storage{
		DB:       db,
		Expenses: expense.NewReader(db),
	}, nil
}

// InitSchema creates the expenses table and its index. Idempotent; the
// process entry point calls it once before accepting requests.
func (s *Storage) InitSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, expense.Schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// must Commit or Rollback on every path.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return NewWriter(tx), nil
}

// Close closes the underlying database handle.
func (s *Storage) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
