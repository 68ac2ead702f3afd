// Package dbtest opens throwaway SQLite stores for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/vvka-141/namesetl/internal/db"
)

// OpenMemory opens an in-memory store with the schema applied. MaxOpenConns
// is 1 because every new connection to ":memory:" is a separate database.
func OpenMemory(t testing.TB, opts ...db.Option) *sql.DB {
	t.Helper()
	conn, err := db.Open(context.Background(), ":memory:", opts...)
	if err != nil {
		t.Fatalf("dbtest.OpenMemory: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// TempPath returns a store path inside t.TempDir. The file is not created.
func TempPath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "names.db")
}
