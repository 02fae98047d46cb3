package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PingContext(ctx))
	assert.True(t, tableExists(t, db, "kv"))
	assert.True(t, tableExists(t, db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run must be a no-op")
	assert.True(t, tableExists(t, db, "kv"))
}

func TestOpenStorage_SQLitePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := &config.Config{StorageDriver: config.StorageSQLite, DatabasePath: filepath.Join(t.TempDir(), "app.db")}

	repo, closeFn, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "@auth_user", []byte(`{"id":"1"}`)))
	require.NoError(t, closeFn())

	repo, closeFn, err = OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	v, err := repo.Get(ctx, "@auth_user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), v)
}

func TestOpenStorage_Memory(t *testing.T) {
	t.Parallel()

	repo, closeFn, err := OpenStorage(context.Background(), &config.Config{StorageDriver: config.StorageMemory})
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.IsType(t, &storage.MemoryRepository{}, repo)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, _, err := OpenStorage(context.Background(), &config.Config{StorageDriver: "etcd"})
	require.Error(t, err)
}

func TestInitDatabase_BadPath(t *testing.T) {
	t.Parallel()

	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "app.db"))
	require.Error(t, err)
}

func TestOpenStorage_SQLiteCreatesParentDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := &config.Config{
		StorageDriver: config.StorageSQLite,
		DatabasePath:  filepath.Join(t.TempDir(), "state", "authshell.db"),
	}

	repo, closeFn, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
}
