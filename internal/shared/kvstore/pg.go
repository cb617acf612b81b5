package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGStore implements Storage over a single kv_entries table. It exists so the
// same store/flow code can run against Postgres when DATABASE_URL is set,
// mirroring the file backend's key-value contract.
type PGStore struct {
	DB      *sql.DB
	Timeout time.Duration
}

// NewPGStore constructs a PGStore with a default per-operation timeout.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{DB: db, Timeout: 5 * time.Second}
}

// Get returns the value for key and whether it was present.
func (s *PGStore) Get(key string) (string, bool, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	const query = `SELECT value FROM kv_entries WHERE key = $1`
	var value string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *PGStore) Set(key, value string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	const query = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	_, err := s.DB.ExecContext(ctx, query, key, value, time.Now().UTC())
	return err
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *PGStore) Delete(key string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	const query = `DELETE FROM kv_entries WHERE key = $1`
	_, err := s.DB.ExecContext(ctx, query, key)
	return err
}

func (s *PGStore) opContext() (context.Context, context.CancelFunc) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

var _ Storage = (*PGStore)(nil)
