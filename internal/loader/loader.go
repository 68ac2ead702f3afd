package loader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/vvka-141/namesetl/internal/db"
	"github.com/vvka-141/namesetl/internal/records"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

const (
	insertRecord = `INSERT INTO unisex_names (id, name, total, male_share, female_share, gap) VALUES (?, ?, ?, ?, ?, ?)`
	deleteAll    = `DELETE FROM unisex_names`
)

// Result summarizes a completed load.
type Result struct {
	Rows int
}

type config struct {
	skipHeader bool
	replace    bool
	openOpts   []db.Option
}

// Option configures Load.
type Option func(*config)

// WithSkipHeader drops the first CSV record.
func WithSkipHeader() Option { return func(c *config) { c.skipHeader = true } }

// WithReplace deletes existing rows inside the load transaction.
func WithReplace() Option { return func(c *config) { c.replace = true } }

// WithDBOptions passes options through to db.Open.
func WithDBOptions(opts ...db.Option) Option {
	return func(c *config) { c.openOpts = append(c.openOpts, opts...) }
}

// Load inserts every record of csvPath into the store at storePath.
// Errors are *namesetl.LoadError; nothing is committed when one is returned.
func Load(ctx context.Context, csvPath, storePath string, opts ...Option) (Result, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return Result{}, &namesetl.LoadError{Kind: namesetl.LoadOpen, Path: csvPath, Err: err}
	}
	defer f.Close()

	conn, err := db.Open(ctx, storePath, cfg.openOpts...)
	if err != nil {
		return Result{}, &namesetl.LoadError{Kind: namesetl.LoadStore, Path: csvPath, Err: err}
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, storeErr(csvPath, fmt.Errorf("begin transaction: %w", err))
	}
	// No-op after a successful Commit.
	defer tx.Rollback()

	rows, err := insertAll(ctx, tx, records.Scan(f, records.ScanOptions{SkipHeader: cfg.skipHeader}), csvPath, cfg.replace)
	if err != nil {
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		return Result{}, storeErr(csvPath, fmt.Errorf("commit: %w", err))
	}
	return Result{Rows: rows}, nil
}

func insertAll(ctx context.Context, tx *sql.Tx, seq iter.Seq2[records.Row, error], csvPath string, replace bool) (int, error) {
	if replace {
		if _, err := tx.ExecContext(ctx, deleteAll); err != nil {
			return 0, storeErr(csvPath, fmt.Errorf("delete existing rows: %w", err))
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertRecord)
	if err != nil {
		return 0, storeErr(csvPath, fmt.Errorf("prepare insert: %w", err))
	}
	defer stmt.Close()

	inserted := 0
	for row, err := range seq {
		if err != nil {
			return inserted, scanErr(csvPath, err)
		}

		rec, err := records.Parse(row.Fields)
		if err != nil {
			le := &namesetl.LoadError{Kind: namesetl.LoadParse, Path: csvPath, Record: row.Number, Line: row.Line, Err: err}
			var fieldErr *records.FieldError
			if errors.As(err, &fieldErr) {
				le.Field = fieldErr.Field
				le.Err = fieldErr.Err
			}
			return inserted, le
		}

		_, err = stmt.ExecContext(ctx, rec.ID, rec.Name, rec.Total, rec.MaleShare, rec.FemaleShare, rec.Gap)
		if err != nil {
			kind := namesetl.LoadStore
			if db.IsConstraintError(err) {
				kind = namesetl.LoadConstraint
				err = fmt.Errorf("duplicate id %d: %w", rec.ID, err)
			}
			return inserted, &namesetl.LoadError{Kind: kind, Path: csvPath, Record: row.Number, Line: row.Line, Err: err}
		}
		inserted++
	}
	return inserted, nil
}

func scanErr(csvPath string, err error) error {
	le := &namesetl.LoadError{Kind: namesetl.LoadCSV, Path: csvPath, Err: err}
	var formatErr *records.FormatError
	if errors.As(err, &formatErr) {
		le.Record = formatErr.Number
		le.Line = formatErr.Line
		le.Err = formatErr.Err
	}
	return le
}

func storeErr(csvPath string, err error) error {
	return &namesetl.LoadError{Kind: namesetl.LoadStore, Path: csvPath, Err: err}
}
