package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hady-bs/blog-mobile-application/internal/dbx"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestGet_ReturnsValue(t *testing.T) {
	db, mock := newMock(t)
	r := NewSQLiteRepository(db)

	rows := sqlmock.NewRows([]string{"value"}).AddRow("opaque-token")
	mock.ExpectQuery(`SELECT value FROM settings`).WithArgs(KeyToken).WillReturnRows(rows)

	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_MissingKeyIsEmptyNotError(t *testing.T) {
	db, mock := newMock(t)
	r := NewSQLiteRepository(db)

	mock.ExpectQuery(`SELECT value FROM settings`).WithArgs(KeyToken).WillReturnError(sql.ErrNoRows)

	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSet_UpsertsByKey(t *testing.T) {
	db, mock := newMock(t)
	r := NewSQLiteRepository(db)

	mock.ExpectExec(`INSERT INTO settings`).WithArgs(KeyColorScheme, "light").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, r.Set(context.Background(), KeyColorScheme, "light"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_WrapsDriverError(t *testing.T) {
	db, mock := newMock(t)
	r := NewSQLiteRepository(db)

	mock.ExpectExec(`INSERT INTO settings`).WithArgs(KeyToken, "v").
		WillReturnError(sql.ErrConnDone)

	err := r.Set(context.Background(), KeyToken, "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "settings[token]")
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)
	r := NewSQLiteRepository(db)

	mock.ExpectExec(`DELETE FROM settings WHERE key`).WithArgs(KeyToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), KeyToken))
}

func TestClear(t *testing.T) {
	db, mock := newMock(t)
	r := NewSQLiteRepository(db)

	mock.ExpectExec(`DELETE FROM settings`).WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, r.Clear(context.Background()))
}

// Grouped writes go through one transaction; a failure mid-way rolls back.
func TestGroupedWrites_RollBackOnFailure(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO settings`).WithArgs(KeyToken, "tkn").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO settings`).WithArgs(KeyColorScheme, "dark").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, "tkn"); err != nil {
			return err
		}
		return repo.Set(ctx, KeyColorScheme, "dark")
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
