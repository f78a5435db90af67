package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// Aktivasi periode menonaktifkan semua periode aktif dulu, baru
// mengaktifkan target, dalam satu transaksi DB.
func TestSetActivePeriod(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCashPeriodService(db)

	periodID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_period_id", "cash_period_label", "cash_period_is_active"}).
			AddRow(periodID, "2025/2026", false))
	mock.ExpectExec(`UPDATE "cash_periods" SET "cash_period_is_active"`).
		WithArgs(false, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cash_periods" SET "cash_period_is_active"`).
		WithArgs(true, sqlmock.AnyArg(), periodID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	period, err := svc.SetActivePeriod(periodID)
	require.NoError(t, err)
	assert.Equal(t, periodID, period.CashPeriodID)
	assert.True(t, period.CashPeriodIsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActivePeriodUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCashPeriodService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows([]string{"cash_period_id"}))
	mock.ExpectRollback()

	_, err := svc.SetActivePeriod(uuid.New())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}
