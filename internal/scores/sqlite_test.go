package scores_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T, path string) *scores.SQLite {
	t.Helper()
	store, err := scores.OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSQLiteStore_Contract(t *testing.T) {
	runStoreContract(t, openSQLite(t, filepath.Join(t.TempDir(), "scores.db")))
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := scores.OpenSQLite(context.Background(), " ")
	assert.Error(t, err)
}

func TestSQLiteMigrationsRunOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	first, err := scores.OpenSQLite(ctx, path)
	require.NoError(t, err)
	_, err = first.Record(ctx, scores.Entry{Player: "ada", Score: 200})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openSQLite(t, path)
	top, err := second.Top(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1, "reopening keeps recorded scores")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestOpenSelectsSQLite(t *testing.T) {
	store, err := scores.Open(context.Background(), config.ScoresConfig{
		Backend: "sqlite",
		Path:    filepath.Join(t.TempDir(), "scores.db"),
	})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &scores.SQLite{}, store)
}
