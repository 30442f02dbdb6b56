package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/models"
)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &credentialRepository{
		db: &DB{
			DB:         db,
			builder:    dollarBuilder,
			classifier: NewPostgresErrorClassifier(),
			logger:     l,
		},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	insertSQL = regexp.QuoteMeta("INSERT INTO passwords (user_id,account,encrypted_password,date_added) VALUES ($1,$2,$3,$4) RETURNING id")
	existsSQL = regexp.QuoteMeta("SELECT 1 FROM passwords WHERE account = $1 AND user_id = $2 LIMIT 1")
	listSQL   = regexp.QuoteMeta("SELECT id, user_id, account, encrypted_password, date_added FROM passwords WHERE user_id = $1 ORDER BY id")
	deleteSQL = regexp.QuoteMeta("DELETE FROM passwords WHERE user_id = $1")
)

func TestInsert_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)

	mock.ExpectQuery(insertSQL).
		WithArgs(int64(42), "mail", "token", "2026-01-02 03:04:05").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.Insert(context.Background(), models.CredentialRecord{
		UserID: 42, Account: "mail", EncryptedSecret: "token", CreatedAt: createdAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery(insertSQL).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(context.Background(), models.CredentialRecord{UserID: 1, Account: "a"})

	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestInsert_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery(insertSQL).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.Insert(context.Background(), models.CredentialRecord{UserID: 1, Account: "a"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    bool
		wantErr error
	}{
		{name: "found", rows: sqlmock.NewRows([]string{"1"}).AddRow(1), want: true},
		{name: "not found", rows: sqlmock.NewRows([]string{"1"}), want: false},
		{name: "db error", err: errors.New("db network error"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCredentialRepo(t)

			exp := mock.ExpectQuery(existsSQL).WithArgs("mail", int64(42))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := repo.Exists(context.Background(), 42, "mail")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListByUser_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "account", "encrypted_password", "date_added"}).
		AddRow(int64(1), int64(42), "mail", "t1", "2026-05-01 10:00:00").
		AddRow(int64(2), int64(42), "bank", "t2", "not a date").
		AddRow(int64(3), int64(42), "legacy", "t3", nil)
	mock.ExpectQuery(listSQL).WithArgs(int64(42)).WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "mail", got[0].Account)
	assert.Equal(t, "t1", got[0].EncryptedSecret)
	assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.Local), got[0].CreatedAt)
	assert.Equal(t, "bank", got[1].Account)
	assert.True(t, got[1].CreatedAt.IsZero())
	assert.True(t, got[2].CreatedAt.IsZero())
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery(listSQL).WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "account", "encrypted_password", "date_added"}))

	got, err := repo.ListByUser(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByUser_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery(listSQL).WillReturnError(sql.ErrConnDone)

		_, err := repo.ListByUser(context.Background(), 42)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		// intentionally wrong shape → scan error
		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		_, err := repo.ListByUser(context.Background(), 42)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		rows := sqlmock.NewRows([]string{"id", "user_id", "account", "encrypted_password", "date_added"}).
			AddRow(int64(1), int64(42), "mail", "t1", "2026-05-01 10:00:00").
			RowError(0, errors.New("connection reset"))
		mock.ExpectQuery(listSQL).WillReturnRows(rows)

		_, err := repo.ListByUser(context.Background(), 42)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestDeleteAllByUser(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec(deleteSQL).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteAllByUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestDeleteAllByUser_Error(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec(deleteSQL).WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.DeleteAllByUser(context.Background(), 42)

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
