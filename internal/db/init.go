// Package db initializes the local SQLite database backing the
// string-keyed key-value store.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// InitSQLite opens (creating if necessary) the SQLite database at path,
// verifies the connection, and ensures the kv schema exists.
func InitSQLite(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return sqlDB, nil
}
