package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	periodmodel "fkmb_backend/internals/features/finance/cash_periods/model"
	"fkmb_backend/internals/features/finance/cash_transactions/model"
)

// LedgerService memegang aturan inti pembukuan: setiap tulis transaksi
// langsung menghitung ulang saldo akhir periode induknya di dalam
// transaksi DB yang sama. Hitung ulang penuh dipilih ketimbang delta
// inkremental supaya edit, hapus, dan entri mundur tanggal tetap benar.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

type RecordTransactionInput struct {
	PeriodID    uuid.UUID
	Date        datatypes.Date
	Kind        string
	Category    *string
	Description string
	AmountIDR   int64
	ReceiptURL  *string
	CreatedBy   *uuid.UUID
}

type UpdateTransactionInput struct {
	Date        *datatypes.Date
	Kind        *string
	Category    *string
	Description *string
	AmountIDR   *int64
	ReceiptURL  *string
}

// Balance adalah agregat murni satu periode, opsional dibatasi tanggal.
type Balance struct {
	TotalInflowIDR    int64 `json:"total_inflow_idr"`
	TotalOutflowIDR   int64 `json:"total_outflow_idr"`
	OpeningBalanceIDR int64 `json:"opening_balance_idr"`
	ClosingBalanceIDR int64 `json:"closing_balance_idr"`
}

// RecordTransaction menyimpan mutasi baru lalu hitung ulang saldo periode.
func (s *LedgerService) RecordTransaction(input RecordTransactionInput) (*model.CashTransactionModel, error) {
	if !model.IsValidTransactionKind(input.Kind) {
		return nil, apperrors.Validation("Jenis transaksi tidak valid", map[string][]string{
			"cash_transaction_kind": {"harus salah satu dari: inflow outflow"},
		})
	}
	if input.AmountIDR < 0 {
		return nil, apperrors.Validation("Nominal tidak valid", map[string][]string{
			"cash_transaction_amount_idr": {"tidak boleh negatif"},
		})
	}

	record := &model.CashTransactionModel{
		CashTransactionPeriodID:    input.PeriodID,
		CashTransactionDate:        input.Date,
		CashTransactionKind:        input.Kind,
		CashTransactionCategory:    input.Category,
		CashTransactionDescription: input.Description,
		CashTransactionAmountIDR:   input.AmountIDR,
		CashTransactionReceiptURL:  input.ReceiptURL,
		CashTransactionCreatedBy:   input.CreatedBy,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensurePeriodExists(tx, input.PeriodID); err != nil {
			return err
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Internal("Gagal menyimpan transaksi", err)
		}
		return recomputeClosingBalance(tx, input.PeriodID)
	})
	if err != nil {
		return nil, asAppError(err)
	}
	return record, nil
}

// UpdateTransaction mengubah mutasi lalu hitung ulang saldo periode.
// Periode induk tidak bisa dipindah lewat update.
func (s *LedgerService) UpdateTransaction(transactionID uuid.UUID, input UpdateTransactionInput) (*model.CashTransactionModel, error) {
	var record model.CashTransactionModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cash_transaction_id = ?", transactionID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Transaksi tidak ditemukan")
			}
			return apperrors.Internal("Gagal memuat transaksi", err)
		}

		updates := map[string]interface{}{}
		if input.Date != nil {
			updates["cash_transaction_date"] = *input.Date
		}
		if input.Kind != nil {
			if !model.IsValidTransactionKind(*input.Kind) {
				return apperrors.Validation("Jenis transaksi tidak valid", map[string][]string{
					"cash_transaction_kind": {"harus salah satu dari: inflow outflow"},
				})
			}
			updates["cash_transaction_kind"] = *input.Kind
		}
		if input.Category != nil {
			updates["cash_transaction_category"] = *input.Category
		}
		if input.Description != nil {
			updates["cash_transaction_description"] = *input.Description
		}
		if input.AmountIDR != nil {
			if *input.AmountIDR < 0 {
				return apperrors.Validation("Nominal tidak valid", map[string][]string{
					"cash_transaction_amount_idr": {"tidak boleh negatif"},
				})
			}
			updates["cash_transaction_amount_idr"] = *input.AmountIDR
		}
		if input.ReceiptURL != nil {
			updates["cash_transaction_receipt_url"] = *input.ReceiptURL
		}
		if len(updates) == 0 {
			return apperrors.Validation("Tidak ada field yang diupdate", nil)
		}

		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return apperrors.Internal("Gagal memperbarui transaksi", err)
		}
		if err := tx.Where("cash_transaction_id = ?", transactionID).First(&record).Error; err != nil {
			return apperrors.Internal("Gagal memuat transaksi terbaru", err)
		}
		return recomputeClosingBalance(tx, record.CashTransactionPeriodID)
	})
	if err != nil {
		return nil, asAppError(err)
	}
	return &record, nil
}

// DeleteTransaction menghapus permanen lalu hitung ulang saldo periode.
func (s *LedgerService) DeleteTransaction(transactionID uuid.UUID) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var record model.CashTransactionModel
		if err := tx.Where("cash_transaction_id = ?", transactionID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Transaksi tidak ditemukan")
			}
			return apperrors.Internal("Gagal memuat transaksi", err)
		}

		if err := tx.Where("cash_transaction_id = ?", transactionID).
			Delete(&model.CashTransactionModel{}).Error; err != nil {
			return apperrors.Internal("Gagal menghapus transaksi", err)
		}
		return recomputeClosingBalance(tx, record.CashTransactionPeriodID)
	})
	return asAppError(err)
}

// GetBalance membaca agregat tanpa menulis apa pun. Rentang tanggal
// opsional; tanpa rentang hasilnya sama dengan saldo akhir periode.
func (s *LedgerService) GetBalance(periodID uuid.UUID, startDate, endDate *time.Time) (*Balance, error) {
	var period periodmodel.CashPeriodModel
	if err := s.DB.Where("cash_period_id = ?", periodID).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Periode kas tidak ditemukan")
		}
		return nil, apperrors.Internal("Gagal memuat periode kas", err)
	}

	query := s.DB.Model(&model.CashTransactionModel{}).
		Where("cash_transaction_period_id = ?", periodID)
	if startDate != nil {
		query = query.Where("cash_transaction_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("cash_transaction_date <= ?", *endDate)
	}

	var totals struct {
		TotalInflow  int64
		TotalOutflow int64
	}
	err := query.
		Select("COALESCE(SUM(CASE WHEN cash_transaction_kind = 'inflow' THEN cash_transaction_amount_idr ELSE 0 END), 0) AS total_inflow, " +
			"COALESCE(SUM(CASE WHEN cash_transaction_kind = 'outflow' THEN cash_transaction_amount_idr ELSE 0 END), 0) AS total_outflow").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Internal("Gagal menghitung saldo", err)
	}

	return &Balance{
		TotalInflowIDR:    totals.TotalInflow,
		TotalOutflowIDR:   totals.TotalOutflow,
		OpeningBalanceIDR: period.CashPeriodOpeningBalanceIDR,
		ClosingBalanceIDR: period.CashPeriodOpeningBalanceIDR + totals.TotalInflow - totals.TotalOutflow,
	}, nil
}

func ensurePeriodExists(tx *gorm.DB, periodID uuid.UUID) error {
	var count int64
	if err := tx.Model(&periodmodel.CashPeriodModel{}).
		Where("cash_period_id = ?", periodID).
		Count(&count).Error; err != nil {
		return apperrors.Internal("Gagal memeriksa periode kas", err)
	}
	if count == 0 {
		return apperrors.NotFound("Periode kas tidak ditemukan")
	}
	return nil
}

// recomputeClosingBalance menghitung ulang saldo akhir dari seluruh
// transaksi hidup periode: saldo awal + Σ pemasukan − Σ pengeluaran.
func recomputeClosingBalance(tx *gorm.DB, periodID uuid.UUID) error {
	var period periodmodel.CashPeriodModel
	if err := tx.Where("cash_period_id = ?", periodID).First(&period).Error; err != nil {
		return apperrors.Internal("Gagal memuat periode kas", err)
	}

	var net struct {
		Net int64
	}
	err := tx.Model(&model.CashTransactionModel{}).
		Select("COALESCE(SUM(CASE WHEN cash_transaction_kind = 'inflow' THEN cash_transaction_amount_idr ELSE -cash_transaction_amount_idr END), 0) AS net").
		Where("cash_transaction_period_id = ?", periodID).
		Scan(&net).Error
	if err != nil {
		return apperrors.Internal("Gagal menghitung saldo", err)
	}

	closing := period.CashPeriodOpeningBalanceIDR + net.Net
	if err := tx.Model(&periodmodel.CashPeriodModel{}).
		Where("cash_period_id = ?", periodID).
		Update("cash_period_closing_balance_idr", closing).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan saldo akhir", err)
	}
	return nil
}

// asAppError memastikan error dari closure transaksi tetap bertipe.
func asAppError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return apperrors.Internal("Transaksi database gagal", err)
}
