package iocache

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/joycemanzada/mlbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteCacheStore returns a store backed by a throwaway SQLite file.
func newSQLiteCacheStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore("fetch_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

func TestCacheStore_SetAndGet(t *testing.T) {
	store := newSQLiteCacheStore(t)

	require.NoError(t, store.Set("key-1", []byte("payload"), 1, 1_700_000_000))

	value, version, ts, err := store.Get("key-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(1_700_000_000), ts)
}

func TestCacheStore_GetMissing(t *testing.T) {
	store := newSQLiteCacheStore(t)

	_, _, _, err := store.Get("never-set")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestCacheStore_SetReplaces(t *testing.T) {
	store := newSQLiteCacheStore(t)

	require.NoError(t, store.Set("key-1", []byte("old"), 1, 100))
	require.NoError(t, store.Set("key-1", []byte("new"), 2, 200))

	value, version, ts, err := store.Get("key-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(200), ts)
}

func TestCacheStore_NoneBackendIsNoop(t *testing.T) {
	store, err := NewCacheStore("fetch_cache", schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("key-1", []byte("payload"), 1, 100))

	_, _, _, err = store.Get("key-1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)
}

func TestCacheStore_BadTableName(t *testing.T) {
	_, err := NewCacheStore("fetch-cache; DROP TABLE", schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table name")
}

func TestCacheStore_GetStatus(t *testing.T) {
	store := newSQLiteCacheStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEntries)

	require.NoError(t, store.Set("a", []byte("1"), 1, 100))
	require.NoError(t, store.Set("b", []byte("2"), 1, 300))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(300), status.LastEntryTime.Unix())
	assert.Equal(t, int64(100), status.OldestEntryTime.Unix())
	assert.Greater(t, status.TableSizeBytes, int64(0))
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("fetch_cache"))
	assert.NoError(t, validateTableName("_private9"))
	assert.Error(t, validateTableName("9starts_with_digit"))
	assert.Error(t, validateTableName("has space"))
	assert.Error(t, validateTableName("semi;colon"))
	assert.Error(t, validateTableName(""))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
}
