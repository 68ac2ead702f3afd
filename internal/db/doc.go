// Package db opens the SQLite file that backs the record store.
//
// The driver is modernc.org/sqlite (pure Go, registered as "sqlite").
// Open applies the pragmas every caller relies on and, unless told
// otherwise, ensures the unisex_names schema exists. Constraint and
// lock errors from the driver are classified with IsConstraintError and
// IsBusy so callers never inspect driver codes directly.
//
// Store file lifecycle (Exists, Remove) lives here as well, since removing
// a SQLite file also means removing its -wal and -shm companions.
package db
