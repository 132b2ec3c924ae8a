package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestTransactor_WithinTx(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		fn      func(ctx context.Context, db *sql.DB) error
		wantErr error
	}{
		{
			name: "commit on success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE events`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, db *sql.DB) error {
				_, err := conn(ctx, db).ExecContext(ctx, `UPDATE events SET state = 'CANCELED'`)
				return err
			},
		},
		{
			name: "rollback on error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, db *sql.DB) error {
				return errBoom
			},
			wantErr: errBoom,
		},
		{
			name: "nested call joins the outer transaction",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, db *sql.DB) error {
				return NewTransactor(db).WithinTx(ctx, func(ctx context.Context) error { return nil })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
				return tt.fn(ctx, db)
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 7; i++ {
		mock.ExpectExec(`CREATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, Migrate(context.Background(), db, testLogger()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
