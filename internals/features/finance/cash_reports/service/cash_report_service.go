package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_reports/model"
	ledgerservice "fkmb_backend/internals/features/finance/cash_transactions/service"
)

// CashReportService membekukan agregat ledger menjadi baris laporan.
// Angka laporan tidak pernah dihitung ulang setelah dibuat; kalau
// transaksi berubah, yang benar adalah generate laporan baru.
type CashReportService struct {
	DB     *gorm.DB
	Ledger *ledgerservice.LedgerService
}

func NewCashReportService(db *gorm.DB) *CashReportService {
	return &CashReportService{DB: db, Ledger: ledgerservice.NewLedgerService(db)}
}

type GenerateReportInput struct {
	PeriodID    uuid.UUID
	Label       string
	StartDate   *time.Time
	EndDate     *time.Time
	GeneratedBy *uuid.UUID
}

// GenerateReport mengambil agregat terfilter lalu menyimpan snapshot.
// Saldo akhir laporan = saldo awal periode + pemasukan − pengeluaran
// untuk rentang yang diminta; bisa berbeda dari saldo akhir periode
// kalau rentangnya sub-periode, dan itu memang disengaja.
func (s *CashReportService) GenerateReport(input GenerateReportInput) (*model.CashReportModel, error) {
	balance, err := s.Ledger.GetBalance(input.PeriodID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	report := &model.CashReportModel{
		CashReportPeriodID:          input.PeriodID,
		CashReportLabel:             input.Label,
		CashReportTotalInflowIDR:    balance.TotalInflowIDR,
		CashReportTotalOutflowIDR:   balance.TotalOutflowIDR,
		CashReportOpeningBalanceIDR: balance.OpeningBalanceIDR,
		CashReportClosingBalanceIDR: balance.ClosingBalanceIDR,
		CashReportGeneratedBy:       input.GeneratedBy,
	}
	if input.StartDate != nil {
		d := datatypes.Date(*input.StartDate)
		report.CashReportRangeStart = &d
	}
	if input.EndDate != nil {
		d := datatypes.Date(*input.EndDate)
		report.CashReportRangeEnd = &d
	}

	if err := s.DB.Create(report).Error; err != nil {
		return nil, apperrors.Internal("Gagal menyimpan laporan kas", err)
	}
	return report, nil
}
