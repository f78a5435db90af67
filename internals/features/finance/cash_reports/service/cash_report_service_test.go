package service

import (
	"testing"
	"time"

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

// Laporan membekukan agregat ledger saat generate; angka tersimpan apa
// adanya, bukan dihitung ulang saat dibaca.
func TestGenerateReportFreezesTotals(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCashReportService(db)

	periodID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_period_id", "cash_period_opening_balance_idr"}).
			AddRow(periodID, int64(100_000)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN cash_transaction_kind`).
		WillReturnRows(sqlmock.NewRows([]string{"total_inflow", "total_outflow"}).
			AddRow(int64(30_000), int64(5_000)))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cash_reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"cash_report_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	report, err := svc.GenerateReport(GenerateReportInput{
		PeriodID: periodID,
		Label:    "Laporan Semester Ganjil",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), report.CashReportTotalInflowIDR)
	assert.Equal(t, int64(5_000), report.CashReportTotalOutflowIDR)
	assert.Equal(t, int64(100_000), report.CashReportOpeningBalanceIDR)
	assert.Equal(t, int64(125_000), report.CashReportClosingBalanceIDR)
	assert.Nil(t, report.CashReportRangeStart)
	assert.Nil(t, report.CashReportRangeEnd)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateReportWithRange(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCashReportService(db)

	periodID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"cash_period_id", "cash_period_opening_balance_idr"}).
			AddRow(periodID, int64(1_000_000)))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN cash_transaction_kind`).
		WillReturnRows(sqlmock.NewRows([]string{"total_inflow", "total_outflow"}).
			AddRow(int64(200_000), int64(50_000)))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cash_reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"cash_report_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	report, err := svc.GenerateReport(GenerateReportInput{
		PeriodID:  periodID,
		Label:     "Laporan Triwulan 1",
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1_150_000), report.CashReportClosingBalanceIDR)
	require.NotNil(t, report.CashReportRangeStart)
	require.NotNil(t, report.CashReportRangeEnd)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateReportUnknownPeriod(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCashReportService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "cash_periods"`).
		WillReturnRows(sqlmock.NewRows([]string{"cash_period_id"}))

	_, err := svc.GenerateReport(GenerateReportInput{
		PeriodID: uuid.New(),
		Label:    "Laporan Kosong",
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}
