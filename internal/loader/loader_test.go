package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/namesetl/internal/db"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

func writeCSV(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "names.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func readRows(t *testing.T, storePath string) []namesetl.NameRecord {
	t.Helper()
	conn, err := db.Open(context.Background(), storePath)
	require.NoError(t, err)
	defer conn.Close()

	rows, err := conn.Query(`SELECT id, name, total, male_share, female_share, gap FROM unisex_names ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var out []namesetl.NameRecord
	for rows.Next() {
		var r namesetl.NameRecord
		require.NoError(t, rows.Scan(&r.ID, &r.Name, &r.Total, &r.MaleShare, &r.FemaleShare, &r.Gap))
		out = append(out, r)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestLoad_SingleRecord(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "9,Jordan,4000,0.50,0.50,0.0\n")
	storePath := filepath.Join(dir, "names.db")

	res, err := Load(context.Background(), csvPath, storePath)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rows)

	assert.Equal(t, []namesetl.NameRecord{
		{ID: 9, Name: "Jordan", Total: 4000, MaleShare: 0.5, FemaleShare: 0.5, Gap: 0},
	}, readRows(t, storePath))
}

func TestLoad_SkipHeader(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "id,name,total,male_share,female_share,gap\n1,Alex,100,0.5,0.5,0\n2,Sam,50,0.2,0.8,0.6\n")
	storePath := filepath.Join(dir, "names.db")

	res, err := Load(context.Background(), csvPath, storePath, WithSkipHeader())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Len(t, readRows(t, storePath), 2)
}

func TestLoad_HeaderWithoutSkipFailsParse(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "id,name,total,male_share,female_share,gap\n1,Alex,100,0.5,0.5,0\n")

	_, err := Load(context.Background(), csvPath, filepath.Join(dir, "names.db"))

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, namesetl.LoadParse, le.Kind)
	assert.Equal(t, 1, le.Record)
	assert.Equal(t, "id", le.Field)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "names.db")

	res, err := Load(context.Background(), writeCSV(t, dir, ""), storePath)
	require.NoError(t, err)
	assert.Zero(t, res.Rows)
	assert.Empty(t, readRows(t, storePath))
}

func TestLoad_ParseFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n2,Sam,many,0.2,0.8,0.6\n")
	storePath := filepath.Join(dir, "names.db")

	_, err := Load(context.Background(), csvPath, storePath)
	require.Error(t, err)
	assert.ErrorIs(t, err, namesetl.ErrLoad)

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, namesetl.LoadParse, le.Kind)
	assert.Equal(t, 2, le.Record)
	assert.Equal(t, 2, le.Line)
	assert.Equal(t, "total", le.Field)
	assert.Contains(t, err.Error(), "record 2 (line 2): field total")

	assert.Empty(t, readRows(t, storePath), "earlier rows are rolled back")
}

func TestLoad_WrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n2,Sam,50,0.2,0.8\n")
	storePath := filepath.Join(dir, "names.db")

	_, err := Load(context.Background(), csvPath, storePath)

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, namesetl.LoadCSV, le.Kind)
	assert.Equal(t, 2, le.Record)
	assert.Empty(t, readRows(t, storePath))
}

func TestLoad_DuplicateIDInFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n1,Sam,50,0.2,0.8,0.6\n")
	storePath := filepath.Join(dir, "names.db")

	_, err := Load(context.Background(), csvPath, storePath)

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, namesetl.LoadConstraint, le.Kind)
	assert.ErrorIs(t, err, namesetl.ErrConstraint)
	assert.ErrorIs(t, err, namesetl.ErrLoad)
	assert.Empty(t, readRows(t, storePath))
}

func TestLoad_SecondLoadConflictsWithoutReplace(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n")
	storePath := filepath.Join(dir, "names.db")
	ctx := context.Background()

	_, err := Load(ctx, csvPath, storePath)
	require.NoError(t, err)

	_, err = Load(ctx, csvPath, storePath)
	assert.ErrorIs(t, err, namesetl.ErrConstraint)
	assert.Len(t, readRows(t, storePath), 1)
}

func TestLoad_Replace(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "names.db")
	ctx := context.Background()

	_, err := Load(ctx, writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n2,Sam,50,0.2,0.8,0.6\n"), storePath)
	require.NoError(t, err)

	res, err := Load(ctx, writeCSV(t, dir, "1,Alex,120,0.4,0.6,0.2\n"), storePath, WithReplace())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rows)

	assert.Equal(t, []namesetl.NameRecord{
		{ID: 1, Name: "Alex", Total: 120, MaleShare: 0.4, FemaleShare: 0.6, Gap: 0.2},
	}, readRows(t, storePath))
}

func TestLoad_ReplaceKeepsRowsOnFailure(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "names.db")
	ctx := context.Background()

	_, err := Load(ctx, writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n"), storePath)
	require.NoError(t, err)

	_, err = Load(ctx, writeCSV(t, dir, "2,Sam,bad,0.2,0.8,0.6\n"), storePath, WithReplace())
	require.Error(t, err)

	rows := readRows(t, storePath)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alex", rows[0].Name)
}

func TestLoad_MissingCSV(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "names.db")

	_, err := Load(context.Background(), filepath.Join(dir, "absent.csv"), storePath)

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, namesetl.LoadOpen, le.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, storePath, "store is not created when the CSV is missing")
}

func TestLoad_StoreOpenFailure(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n")

	_, err := Load(context.Background(), csvPath, filepath.Join(dir, "missing", "names.db"))

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, namesetl.LoadStore, le.Kind)
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Alex,100,0.5,0.5,0\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, csvPath, filepath.Join(dir, "names.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_NaNRejectedBeforeStoring(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeCSV(t, dir, "1,Good,10,0.5,0.5,0\n2,Bad,10,NaN,0.5,0\n")
	storePath := filepath.Join(dir, "names.db")

	res, err := Load(context.Background(), csvPath, storePath)

	var le *namesetl.LoadError
	require.True(t, errors.As(err, &le), "got %v", err)
	assert.Equal(t, namesetl.LoadParse, le.Kind)
	assert.Equal(t, 2, le.Record)
	assert.Equal(t, "male_share", le.Field)
	assert.Zero(t, res.Rows)
	assert.Empty(t, readRows(t, storePath), "the good row is rolled back too")
}
