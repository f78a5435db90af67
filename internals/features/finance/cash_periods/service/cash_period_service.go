package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_periods/model"
)

type CashPeriodService struct {
	DB *gorm.DB
}

func NewCashPeriodService(db *gorm.DB) *CashPeriodService {
	return &CashPeriodService{DB: db}
}

// SetActivePeriod menjaga invariant maksimal satu periode aktif:
// nonaktifkan semua periode aktif dulu, baru aktifkan target, dalam satu
// transaksi DB. Keadaan antara (nol periode aktif) tidak pernah terlihat
// di luar transaksi.
func (s *CashPeriodService) SetActivePeriod(periodID uuid.UUID) (*model.CashPeriodModel, error) {
	var period model.CashPeriodModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cash_period_id = ?", periodID).First(&period).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Periode kas tidak ditemukan")
			}
			return apperrors.Internal("Gagal memuat periode kas", err)
		}

		if err := tx.Model(&model.CashPeriodModel{}).
			Where("cash_period_is_active = ?", true).
			Update("cash_period_is_active", false).Error; err != nil {
			return apperrors.Internal("Gagal menonaktifkan periode lama", err)
		}

		if err := tx.Model(&model.CashPeriodModel{}).
			Where("cash_period_id = ?", periodID).
			Update("cash_period_is_active", true).Error; err != nil {
			return apperrors.Internal("Gagal mengaktifkan periode", err)
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal("Transaksi database gagal", err)
	}

	period.CashPeriodIsActive = true
	return &period, nil
}
