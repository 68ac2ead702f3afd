package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the complete store schema. It is safe to execute repeatedly.
const Schema = `
CREATE TABLE IF NOT EXISTS unisex_names (
    id           INTEGER PRIMARY KEY,
    name         TEXT NOT NULL,
    total        INTEGER,
    male_share   REAL,
    female_share REAL,
    gap          REAL
);
`

// Execer is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSchema creates the unisex_names table if it does not exist.
func CreateSchema(ctx context.Context, conn Execer) error {
	if _, err := conn.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
