package store

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT 0
	);`)
	require.NoError(t, err)
	return db
}

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	return s
}

func TestKV(t *testing.T) {
	stores := map[string]func(t *testing.T) KV{
		"sqlite": func(t *testing.T) KV { return New(initTestDB(t)) },
		"file":   func(t *testing.T) KV { return newFileStore(t) },
	}

	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			kv := mk(t)

			_, err := kv.Get("continueWatching")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Set("continueWatching", `[]`))
			require.NoError(t, kv.Set("continueWatching", `[{"id":7}]`))

			v, err := kv.Get("continueWatching")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":7}]`, v)

			require.NoError(t, kv.Delete("continueWatching"))
			_, err = kv.Get("continueWatching")
			assert.ErrorIs(t, err, ErrNotFound)

			// deleting a missing key is fine
			assert.NoError(t, kv.Delete("continueWatching"))
		})
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	s := newFileStore(t)

	for _, key := range []string{"", "../etc/passwd", "a/b", ".hidden"} {
		assert.Error(t, s.Set(key, "x"), key)
	}
}

func TestFileStore_NoTempLeftBehind(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewFileStore(fs, "/data")
	require.NoError(t, err)

	require.NoError(t, s.Set("k", "v"))

	exists, err := afero.Exists(fs, "/data/k.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}
