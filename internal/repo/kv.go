package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// KVStore is the key-value store the map's local state lives in.
// Values are opaque strings; callers own their encoding.
type KVStore interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Update atomically replaces the value under key with fn's result.
	// fn receives the current value (ok is false when unset) and may be
	// called more than once if a concurrent writer wins. An error from fn
	// aborts the update and is returned unchanged inside the wrap.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// UpdateFunc computes a new value from the current one.
type UpdateFunc func(value string, ok bool) (string, error)

// pgKVStore is the Postgres implementation of KVStore over the kv_entries table.
type pgKVStore struct {
	db db
}

// NewPostgresKVStore constructs a KVStore backed by the provided db connection.
func NewPostgresKVStore(db db) KVStore {
	return &pgKVStore{db: db}
}

func (s *pgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := getEntry(ctx, s.db, key)
	if err != nil {
		return "", false, fmt.Errorf("repo.KVStore.Get: %w", err)
	}
	return value, ok, nil
}

func (s *pgKVStore) Set(ctx context.Context, key, value string) error {
	if err := setEntry(ctx, s.db, key, value); err != nil {
		return fmt.Errorf("repo.KVStore.Set: %w", err)
	}
	return nil
}

// Update serializes writers of key with a transaction-scoped advisory lock,
// which also covers keys that have no row yet.
func (s *pgKVStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.KVStore.Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lock = `SELECT pg_advisory_xact_lock(hashtext(@key))`
	if _, err := tx.Exec(ctx, lock, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("repo.KVStore.Update: lock: %w", err)
	}

	cur, ok, err := getEntry(ctx, tx, key)
	if err != nil {
		return fmt.Errorf("repo.KVStore.Update: %w", err)
	}
	next, err := fn(cur, ok)
	if err != nil {
		return fmt.Errorf("repo.KVStore.Update: %w", err)
	}
	if err := setEntry(ctx, tx, key, next); err != nil {
		return fmt.Errorf("repo.KVStore.Update: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.KVStore.Update: commit: %w", err)
	}
	return nil
}

func getEntry(ctx context.Context, q db, key string) (string, bool, error) {
	const sql = `SELECT value FROM kv_entries WHERE key = @key`

	var value string
	err := q.QueryRow(ctx, sql, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func setEntry(ctx context.Context, q db, key, value string) error {
	const sql = `
		INSERT INTO kv_entries (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	_, err := q.Exec(ctx, sql, pgx.NamedArgs{"key": key, "value": value})
	return err
}
