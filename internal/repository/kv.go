// Package repository provides persistence implementations over the local
// SQLite key-value store.
package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteKVRepository implements string-keyed key-value persistence using a
// SQLite database. Values are opaque strings; callers own their encoding.
type SQLiteKVRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewSQLiteKVRepository creates a new SQLiteKVRepository with the given
// database connection. db must be a valid *sql.DB with the kv table present.
func NewSQLiteKVRepository(db *sql.DB) *SQLiteKVRepository {
	return &SQLiteKVRepository{DB: db}
}

// Get returns the value stored under key. The second return value is false
// when the key is absent.
func (r *SQLiteKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT value FROM kv WHERE key = $1`,
		key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any existing value.
func (r *SQLiteKVRepository) Put(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv put: %w", err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an error.
func (r *SQLiteKVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`DELETE FROM kv WHERE key = $1`,
		key,
	)
	if err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}
