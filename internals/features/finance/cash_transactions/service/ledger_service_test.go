package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_transactions/model"
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

func TestGetBalance(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)

	periodID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_period_id", "cash_period_label", "cash_period_opening_balance_idr"}).
			AddRow(periodID, "2025/2026", int64(5_000_000)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN cash_transaction_kind`).
		WillReturnRows(sqlmock.NewRows([]string{"total_inflow", "total_outflow"}).
			AddRow(int64(1_000_000), int64(250_000)))

	balance, err := svc.GetBalance(periodID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), balance.OpeningBalanceIDR)
	assert.Equal(t, int64(1_000_000), balance.TotalInflowIDR)
	assert.Equal(t, int64(250_000), balance.TotalOutflowIDR)
	assert.Equal(t, int64(5_750_000), balance.ClosingBalanceIDR)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalanceUnknownPeriod(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows([]string{"cash_period_id"}))

	_, err := svc.GetBalance(uuid.New(), nil, nil)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordTransactionInvalidKind(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLedgerService(db)

	_, err := svc.RecordTransaction(RecordTransactionInput{
		PeriodID:    uuid.New(),
		Date:        datatypes.Date(time.Now()),
		Kind:        "transfer",
		Description: "salah jenis",
		AmountIDR:   1000,
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "cash_transaction_kind")
}

func TestRecordTransactionNegativeAmount(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLedgerService(db)

	_, err := svc.RecordTransaction(RecordTransactionInput{
		PeriodID:    uuid.New(),
		Date:        datatypes.Date(time.Now()),
		Kind:        model.TransactionKindInflow,
		Description: "nominal minus",
		AmountIDR:   -500,
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "cash_transaction_amount_idr")
}

// Tulis transaksi baru menghitung ulang saldo akhir di transaksi DB yang sama:
// saldo awal 5.000.000 + net 750.000 = 5.750.000.
func TestRecordTransactionRecomputesClosing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)

	periodID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "cash_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"cash_transaction_id"}).AddRow(uuid.New()))
	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_period_id", "cash_period_opening_balance_idr"}).
			AddRow(periodID, int64(5_000_000)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN cash_transaction_kind`).
		WillReturnRows(sqlmock.NewRows([]string{"net"}).AddRow(int64(750_000)))
	mock.ExpectExec(`UPDATE "cash_periods" SET "cash_period_closing_balance_idr"`).
		WithArgs(int64(5_750_000), sqlmock.AnyArg(), periodID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	record, err := svc.RecordTransaction(RecordTransactionInput{
		PeriodID:    periodID,
		Date:        datatypes.Date(time.Now()),
		Kind:        model.TransactionKindInflow,
		Description: "iuran anggota",
		AmountIDR:   1_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, periodID, record.CashTransactionPeriodID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordTransactionUnknownPeriod(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := svc.RecordTransaction(RecordTransactionInput{
		PeriodID:    uuid.New(),
		Date:        datatypes.Date(time.Now()),
		Kind:        model.TransactionKindOutflow,
		Description: "periode hilang",
		AmountIDR:   10_000,
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Hapus pengeluaran 250.000: net yang tersisa 1.000.000, saldo akhir
// kembali naik jadi 6.000.000.
func TestDeleteTransactionRecomputesClosing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLedgerService(db)

	periodID := uuid.New()
	transactionID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cash_transactions"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_transaction_id", "cash_transaction_period_id", "cash_transaction_kind", "cash_transaction_amount_idr"}).
			AddRow(transactionID, periodID, model.TransactionKindOutflow, int64(250_000)))
	mock.ExpectExec(`DELETE FROM "cash_transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_period_id", "cash_period_opening_balance_idr"}).
			AddRow(periodID, int64(5_000_000)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN cash_transaction_kind`).
		WillReturnRows(sqlmock.NewRows([]string{"net"}).AddRow(int64(1_000_000)))
	mock.ExpectExec(`UPDATE "cash_periods" SET "cash_period_closing_balance_idr"`).
		WithArgs(int64(6_000_000), sqlmock.AnyArg(), periodID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteTransaction(transactionID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
