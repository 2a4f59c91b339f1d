package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// Open against a real file: migrations run, values survive reopening.
func TestOpen_MigratesAndPersists(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "settings.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, KeyToken, "opaque"))
	require.NoError(t, repo.Set(ctx, KeyColorScheme, "light"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	repo = NewSQLiteRepository(db)
	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "opaque", v)

	require.NoError(t, repo.Delete(ctx, KeyToken))
	v, err = repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = repo.Get(ctx, KeyColorScheme)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}
