package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/vvka-141/namesetl/internal/db"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// Repository performs record operations over an open database handle.
// Safe for concurrent use; SQLite serializes writers.
type Repository struct {
	db   *sql.DB
	path string // used in error messages only
}

// NewRepository wraps conn. path labels errors and may be empty.
// Panics if conn is nil.
func NewRepository(conn *sql.DB, path string) *Repository {
	if conn == nil {
		panic("conn cannot be nil")
	}
	return &Repository{db: conn, path: path}
}

// Create inserts rec. A duplicate id yields *namesetl.ConstraintError; a NaN
// real yields namesetl.ErrInvalidRecord and nothing is written.
func (r *Repository) Create(ctx context.Context, rec namesetl.NameRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, queryInsert, rec.ID, rec.Name, rec.Total, rec.MaleShare, rec.FemaleShare, rec.Gap)
	if err != nil {
		if db.IsConstraintError(err) {
			return &namesetl.ConstraintError{ID: rec.ID, Err: err}
		}
		return r.fail("create", rec.ID, err)
	}
	return nil
}

// All returns a single-pass iterator over every record in natural row
// order. The underlying rows are closed when iteration ends for any reason.
// A decode failure yields *namesetl.DecodeError and stops iteration.
func (r *Repository) All(ctx context.Context) iter.Seq2[namesetl.NameRecord, error] {
	return func(yield func(namesetl.NameRecord, error) bool) {
		rows, err := r.db.QueryContext(ctx, querySelectAll)
		if err != nil {
			yield(namesetl.NameRecord{}, r.fail("read", 0, err))
			return
		}
		defer rows.Close()

		n := 0
		for rows.Next() {
			n++
			rec, err := scanRecord(rows, n)
			if err != nil {
				if !errors.Is(err, namesetl.ErrDecode) {
					err = r.fail("read", 0, err)
				}
				yield(namesetl.NameRecord{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(namesetl.NameRecord{}, r.fail("read", 0, err))
		}
	}
}

// Get returns the record with the given id, or namesetl.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (namesetl.NameRecord, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, querySelectByID, id), 1)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return namesetl.NameRecord{}, fmt.Errorf("id %d: %w", id, namesetl.ErrNotFound)
	case errors.Is(err, namesetl.ErrDecode):
		return namesetl.NameRecord{}, err
	case err != nil:
		return namesetl.NameRecord{}, r.fail("get", id, err)
	}
	return rec, nil
}

// Update replaces the non-key fields of the record whose id is rec.ID and
// returns the number of rows affected (0 or 1). NaN reals are rejected as in
// Create.
func (r *Repository) Update(ctx context.Context, rec namesetl.NameRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, queryUpdate, rec.Name, rec.Total, rec.MaleShare, rec.FemaleShare, rec.Gap, rec.ID)
	if err != nil {
		return 0, r.fail("update", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.fail("update", rec.ID, err)
	}
	return n, nil
}

// Delete removes the record with the given id and returns the number of
// rows affected (0 or 1).
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, queryDelete, id)
	if err != nil {
		return 0, r.fail("delete", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.fail("delete", id, err)
	}
	return n, nil
}

// Count returns the number of stored records.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, queryCount).Scan(&n); err != nil {
		return 0, r.fail("count", 0, err)
	}
	return n, nil
}

func (r *Repository) fail(op string, id int64, err error) error {
	return &namesetl.StoreError{Op: op, Path: r.path, ID: id, Err: err}
}
