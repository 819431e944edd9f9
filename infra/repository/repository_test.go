package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	return db, mock
}

const tryMarkSQL = `UPDATE "transactions" SET "is_reconciled"=$1,"modified_at"=$2,"reconciled_at"=$3 ` +
	`WHERE payment_reference_id = $4 AND is_reconciled = $5 AND is_flagged = $6`

func TestTryMarkReconciled_ConditionalUpdate(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"wins the transition", 1, true},
		{"already reconciled or flagged", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			store := NewTransactionStore(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(tryMarkSQL)).
				WithArgs(true, sqlmock.AnyArg(), sqlmock.AnyArg(), "ref123", false, false).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			ok, err := store.TryMarkReconciled(context.Background(), "ref123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTryMarkReconciled_Error(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewTransactionStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(tryMarkSQL)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	ok, err := store.TryMarkReconciled(context.Background(), "ref123")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlag_OnlyUnreconciledRows(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewTransactionStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET "is_flagged"=\$1,"modified_at"=\$2,"notes"=CASE WHEN notes = '' THEN \$3 ELSE notes \|\| \$4 END WHERE payment_reference_id = \$5 AND is_reconciled = \$6`).
		WithArgs(true, sqlmock.AnyArg(), "amount mismatch", "\namount mismatch", "ref123", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := store.Flag(context.Background(), "ref123", "amount mismatch")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByReference_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewTransactionStore(db)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE payment_reference_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.FindByReference(context.Background(), "ghost999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
