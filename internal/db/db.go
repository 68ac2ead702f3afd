package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const driverName = "sqlite"

type config struct {
	busyTimeout int
	journalMode string
	schema      bool
	ping        bool
}

func defaults() config {
	return config{
		busyTimeout: 5_000,
		journalMode: "DELETE",
		schema:      true,
		ping:        true,
	}
}

// Option customises Open.
type Option func(*config)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 5000.
func WithBusyTimeout(ms int) Option { return func(c *config) { c.busyTimeout = ms } }

// WithJournalMode sets PRAGMA journal_mode. Default: "DELETE", which keeps
// the store a single file when closed.
func WithJournalMode(mode string) Option { return func(c *config) { c.journalMode = mode } }

// WithoutSchema skips CreateSchema after opening.
func WithoutSchema() Option { return func(c *config) { c.schema = false } }

// WithoutPing skips the connectivity check.
func WithoutPing() Option { return func(c *config) { c.ping = false } }

// Open opens (creating if needed) the SQLite file at path.
// On any failure the handle is closed before returning.
func Open(ctx context.Context, path string, opts ...Option) (*sql.DB, error) {
	cfg := defaults()
	for _, o := range opts {
		o(&cfg)
	}

	conn, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if cfg.ping {
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, wrapOpenError(err, path)
		}
	}

	if err := applyPragmas(ctx, conn, &cfg); err != nil {
		conn.Close()
		return nil, wrapOpenError(err, path)
	}

	if cfg.schema {
		if err := CreateSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, wrapOpenError(err, path)
		}
	}

	return conn, nil
}

func applyPragmas(ctx context.Context, conn *sql.DB, cfg *config) error {
	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		fmt.Sprintf("PRAGMA journal_mode = %s", cfg.journalMode),
	}
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// IsConstraintError reports whether err is a SQLite constraint violation
// (primary key, unique, not null, check).
func IsConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// IsBusy reports whether err is a SQLite lock timeout.
func IsBusy(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		primary := sqliteErr.Code() & 0xff
		return primary == sqlite3.SQLITE_BUSY || primary == sqlite3.SQLITE_LOCKED
	}
	return false
}

// wrapOpenError adds actionable guidance to common open failures.
func wrapOpenError(err error, path string) error {
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "unable to open database file") || strings.Contains(errStr, "out of memory (14)"):
		return fmt.Errorf(`cannot open store %q

Possible causes:
  - Parent directory does not exist
  - No permission to create or read the file

Original error: %w`, path, err)

	case strings.Contains(errStr, "file is not a database"):
		return fmt.Errorf(`%q is not a SQLite database

Possible causes:
  - The path points at the CSV file or another non-database file
  - The file is corrupted (use --overwrite to rebuild it)

Original error: %w`, path, err)

	case IsBusy(err):
		return fmt.Errorf(`store %q is locked

Another process holds a write lock. Retry once it finishes.

Original error: %w`, path, err)

	case strings.Contains(errStr, "readonly"):
		return fmt.Errorf(`store %q is read-only

Original error: %w`, path, err)

	default:
		return fmt.Errorf("open store %q: %w", path, err)
	}
}

// Exists reports whether a store file is present at path.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat store %q: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("store path %q is a directory", path)
	}
	return true, nil
}

// Remove deletes the store file and its journal companions. A missing file
// is not an error.
func Remove(path string) error {
	for _, p := range []string{path, path + "-journal", path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %q: %w", p, err)
		}
	}
	return nil
}
