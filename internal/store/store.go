package store

import (
	"context"
	"database/sql"
	"iter"

	"github.com/vvka-141/namesetl/internal/db"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// open returns a repository over a freshly opened store. The caller owns
// the returned handle.
func open(ctx context.Context, storePath string) (*Repository, *sql.DB, error) {
	conn, err := db.Open(ctx, storePath)
	if err != nil {
		return nil, nil, &namesetl.StoreError{Op: "open", Path: storePath, Err: err}
	}
	return NewRepository(conn, storePath), conn, nil
}

// Create inserts rec into the store at storePath.
func Create(ctx context.Context, storePath string, rec namesetl.NameRecord) error {
	repo, conn, err := open(ctx, storePath)
	if err != nil {
		return err
	}
	defer conn.Close()

	return repo.Create(ctx, rec)
}

// ReadAll returns a lazy full scan of the store at storePath. The store is
// opened when iteration starts and closed when it ends.
func ReadAll(ctx context.Context, storePath string) iter.Seq2[namesetl.NameRecord, error] {
	return func(yield func(namesetl.NameRecord, error) bool) {
		repo, conn, err := open(ctx, storePath)
		if err != nil {
			yield(namesetl.NameRecord{}, err)
			return
		}
		defer conn.Close()

		for rec, err := range repo.All(ctx) {
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Update replaces the non-key fields of rec.ID and returns rows affected.
func Update(ctx context.Context, storePath string, rec namesetl.NameRecord) (int64, error) {
	repo, conn, err := open(ctx, storePath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	return repo.Update(ctx, rec)
}

// Delete removes id and returns rows affected.
func Delete(ctx context.Context, storePath string, id int64) (int64, error) {
	repo, conn, err := open(ctx, storePath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	return repo.Delete(ctx, id)
}
