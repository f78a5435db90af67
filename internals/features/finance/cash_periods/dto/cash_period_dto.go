package dto

import (
	"github.com/google/uuid"

	"fkmb_backend/internals/features/finance/cash_periods/model"
)

// 🔹 Request membuat periode kas
type CreateCashPeriodRequest struct {
	CashPeriodLabel             string `json:"cash_period_label" validate:"required,max=20"`
	CashPeriodOpeningBalanceIDR int64  `json:"cash_period_opening_balance_idr" validate:"gte=0"`
	CashPeriodDescription       string `json:"cash_period_description" validate:"omitempty,max=1000"`
}

// 🔹 Request update periode (saldo akhir tidak bisa di-set manual)
type UpdateCashPeriodRequest struct {
	CashPeriodLabel       *string `json:"cash_period_label" validate:"omitempty,max=20"`
	CashPeriodDescription *string `json:"cash_period_description" validate:"omitempty,max=1000"`
}

type CashPeriodResponse struct {
	CashPeriodID                uuid.UUID `json:"cash_period_id"`
	CashPeriodLabel             string    `json:"cash_period_label"`
	CashPeriodOpeningBalanceIDR int64     `json:"cash_period_opening_balance_idr"`
	CashPeriodClosingBalanceIDR int64     `json:"cash_period_closing_balance_idr"`
	CashPeriodDescription       string    `json:"cash_period_description"`
	CashPeriodIsActive          bool      `json:"cash_period_is_active"`
	CashPeriodCreatedAt         string    `json:"cash_period_created_at"`
}

func (r *CreateCashPeriodRequest) ToModel() *model.CashPeriodModel {
	return &model.CashPeriodModel{
		CashPeriodLabel:             r.CashPeriodLabel,
		CashPeriodOpeningBalanceIDR: r.CashPeriodOpeningBalanceIDR,
		// Periode baru belum punya transaksi: saldo akhir = saldo awal
		CashPeriodClosingBalanceIDR: r.CashPeriodOpeningBalanceIDR,
		CashPeriodDescription:       r.CashPeriodDescription,
	}
}

func ToCashPeriodResponse(m *model.CashPeriodModel) *CashPeriodResponse {
	return &CashPeriodResponse{
		CashPeriodID:                m.CashPeriodID,
		CashPeriodLabel:             m.CashPeriodLabel,
		CashPeriodOpeningBalanceIDR: m.CashPeriodOpeningBalanceIDR,
		CashPeriodClosingBalanceIDR: m.CashPeriodClosingBalanceIDR,
		CashPeriodDescription:       m.CashPeriodDescription,
		CashPeriodIsActive:          m.CashPeriodIsActive,
		CashPeriodCreatedAt:         m.CashPeriodCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCashPeriodResponseList(models []model.CashPeriodModel) []CashPeriodResponse {
	result := make([]CashPeriodResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCashPeriodResponse(&m))
	}
	return result
}
