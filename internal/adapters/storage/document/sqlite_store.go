package document

import (
	"context"
	"database/sql"
	"time"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new document store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves a document by key.
// PRE: key is non-empty
// POST: ok is false when no document exists under key
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM document WHERE key = ?", key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put persists a document under key (insert or full replace).
// PRE: key is non-empty
// POST: Get(key) returns value
func (s *SQLiteStore) Put(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO document (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at",
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
