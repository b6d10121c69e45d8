package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLBucket(t *testing.T, dialect Dialect) (*SQLBucket, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	return NewSQLBucket(newDB(conn, dialect, l), l), mock
}

func TestSQLBucket_Get_Postgres(t *testing.T) {
	bucket, mock := newTestSQLBucket(t, DialectPostgres)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT content_type FROM objects WHERE object_key = $1")).
		WithArgs("ep1/01.gif").
		WillReturnRows(sqlmock.NewRows([]string{"content_type"}).AddRow("image/gif"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT data FROM objects WHERE object_key = $1")).
		WithArgs("ep1/01.gif").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("GIF89a")))

	obj, err := bucket.Get(ctx, "ep1/01.gif")
	require.NoError(t, err)
	assert.Equal(t, "image/gif", obj.ContentType())

	data, err := obj.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("GIF89a"), data)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBucket_Get_SQLitePlaceholders(t *testing.T) {
	bucket, mock := newTestSQLBucket(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT content_type FROM objects WHERE object_key = ?")).
		WithArgs("ep1/ep1.json").
		WillReturnRows(sqlmock.NewRows([]string{"content_type"}).AddRow(nil))

	obj, err := bucket.Get(context.Background(), "ep1/ep1.json")
	require.NoError(t, err)
	assert.Empty(t, obj.ContentType())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBucket_Get_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "no rows", dbErr: sql.ErrNoRows, wantErr: ErrObjectNotFound},
		{name: "undefined table", dbErr: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, wantErr: ErrObjectsTableMissing},
		{name: "connection failure", dbErr: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, wantErr: ErrConnectionLost},
		{name: "cannot connect now", dbErr: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, wantErr: ErrConnectionLost},
		{name: "other error", dbErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, mock := newTestSQLBucket(t, DialectPostgres)
			mock.ExpectQuery("SELECT content_type FROM objects").
				WillReturnError(tt.dbErr)

			obj, err := bucket.Get(context.Background(), "ep1/missing.png")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, obj)
		})
	}
}

func TestSQLBucket_ReadAll_RowDeleted(t *testing.T) {
	bucket, mock := newTestSQLBucket(t, DialectPostgres)
	ctx := context.Background()

	mock.ExpectQuery("SELECT content_type FROM objects").
		WillReturnRows(sqlmock.NewRows([]string{"content_type"}).AddRow("image/png"))
	mock.ExpectQuery("SELECT data FROM objects").
		WillReturnError(sql.ErrNoRows)

	obj, err := bucket.Get(ctx, "ep1/01.png")
	require.NoError(t, err)

	_, err = obj.ReadAll(ctx)
	require.ErrorIs(t, err, ErrObjectNotFound)
}
