package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/namesetl/internal/db/dbtest"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(dbtest.OpenMemory(t), ":memory:")
}

func TestNewRepository_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewRepository(nil, "") })
}

func TestRepository_Get(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, jordan))

	got, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, jordan, got)

	_, err = repo.Get(ctx, 10)
	assert.ErrorIs(t, err, namesetl.ErrNotFound)
}

func TestRepository_Count(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, alex))
	require.NoError(t, repo.Create(ctx, jordan))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRepository_All(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, alex))
	require.NoError(t, repo.Create(ctx, jordan))

	ids := map[int64]bool{}
	for rec, err := range repo.All(ctx) {
		require.NoError(t, err)
		ids[rec.ID] = true
	}
	assert.Equal(t, map[int64]bool{1: true, 9: true}, ids)
}

func TestRepository_GetDecodeError(t *testing.T) {
	conn := dbtest.OpenMemory(t)
	repo := NewRepository(conn, ":memory:")
	_, err := conn.Exec(`INSERT INTO unisex_names (id, name, total, male_share, female_share, gap) VALUES (3, 'Kai', 5, NULL, 0.5, 0.5)`)
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), 3)

	var de *namesetl.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "male_share", de.Column)
}

func TestRepository_ClosedDatabase(t *testing.T) {
	conn := dbtest.OpenMemory(t)
	repo := NewRepository(conn, "closed.db")
	require.NoError(t, conn.Close())

	err := repo.Create(context.Background(), alex)
	assert.ErrorIs(t, err, namesetl.ErrStore)
	assert.Contains(t, err.Error(), "closed.db create id=1")
}
