package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_transactions/model"
	"fkmb_backend/internals/features/finance/cash_transactions/service"
)

const dateLayout = "2006-01-02"

// 🔹 Request mencatat transaksi kas
type CreateCashTransactionRequest struct {
	CashTransactionPeriodID    uuid.UUID `json:"cash_transaction_period_id" validate:"required"`
	CashTransactionDate        string    `json:"cash_transaction_date" validate:"required,datetime=2006-01-02"`
	CashTransactionKind        string    `json:"cash_transaction_kind" validate:"required,oneof=inflow outflow"`
	CashTransactionCategory    *string   `json:"cash_transaction_category" validate:"omitempty,max=100"`
	CashTransactionDescription string    `json:"cash_transaction_description" validate:"required,max=1000"`
	CashTransactionAmountIDR   int64     `json:"cash_transaction_amount_idr" validate:"gte=0"`
	CashTransactionReceiptURL  *string   `json:"cash_transaction_receipt_url" validate:"omitempty,max=2000"`
}

// 🔹 Request update transaksi (periode tidak bisa dipindah)
type UpdateCashTransactionRequest struct {
	CashTransactionDate        *string `json:"cash_transaction_date" validate:"omitempty,datetime=2006-01-02"`
	CashTransactionKind        *string `json:"cash_transaction_kind" validate:"omitempty,oneof=inflow outflow"`
	CashTransactionCategory    *string `json:"cash_transaction_category" validate:"omitempty,max=100"`
	CashTransactionDescription *string `json:"cash_transaction_description" validate:"omitempty,max=1000"`
	CashTransactionAmountIDR   *int64  `json:"cash_transaction_amount_idr" validate:"omitempty,gte=0"`
	CashTransactionReceiptURL  *string `json:"cash_transaction_receipt_url" validate:"omitempty,max=2000"`
}

type CashTransactionResponse struct {
	CashTransactionID          uuid.UUID  `json:"cash_transaction_id"`
	CashTransactionPeriodID    uuid.UUID  `json:"cash_transaction_period_id"`
	CashTransactionDate        string     `json:"cash_transaction_date"`
	CashTransactionKind        string     `json:"cash_transaction_kind"`
	CashTransactionCategory    *string    `json:"cash_transaction_category,omitempty"`
	CashTransactionDescription string     `json:"cash_transaction_description"`
	CashTransactionAmountIDR   int64      `json:"cash_transaction_amount_idr"`
	CashTransactionReceiptURL  *string    `json:"cash_transaction_receipt_url,omitempty"`
	CashTransactionCreatedBy   *uuid.UUID `json:"cash_transaction_created_by,omitempty"`
	CashTransactionCreatedAt   string     `json:"cash_transaction_created_at"`
}

// ToRecordInput mengubah request menjadi input service ledger.
func (r *CreateCashTransactionRequest) ToRecordInput(createdBy *uuid.UUID) (service.RecordTransactionInput, error) {
	date, err := ParseDate(r.CashTransactionDate)
	if err != nil {
		return service.RecordTransactionInput{}, err
	}
	return service.RecordTransactionInput{
		PeriodID:    r.CashTransactionPeriodID,
		Date:        date,
		Kind:        r.CashTransactionKind,
		Category:    r.CashTransactionCategory,
		Description: r.CashTransactionDescription,
		AmountIDR:   r.CashTransactionAmountIDR,
		ReceiptURL:  r.CashTransactionReceiptURL,
		CreatedBy:   createdBy,
	}, nil
}

func (r *UpdateCashTransactionRequest) ToUpdateInput() (service.UpdateTransactionInput, error) {
	input := service.UpdateTransactionInput{
		Kind:        r.CashTransactionKind,
		Category:    r.CashTransactionCategory,
		Description: r.CashTransactionDescription,
		AmountIDR:   r.CashTransactionAmountIDR,
		ReceiptURL:  r.CashTransactionReceiptURL,
	}
	if r.CashTransactionDate != nil {
		date, err := ParseDate(*r.CashTransactionDate)
		if err != nil {
			return service.UpdateTransactionInput{}, err
		}
		input.Date = &date
	}
	return input, nil
}

// ParseDate membaca tanggal format YYYY-MM-DD.
func ParseDate(raw string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return datatypes.Date{}, apperrors.Validation("Tanggal tidak valid", map[string][]string{
			"cash_transaction_date": {"format tanggal harus " + dateLayout},
		})
	}
	return datatypes.Date(t), nil
}

func ToCashTransactionResponse(m *model.CashTransactionModel) *CashTransactionResponse {
	return &CashTransactionResponse{
		CashTransactionID:          m.CashTransactionID,
		CashTransactionPeriodID:    m.CashTransactionPeriodID,
		CashTransactionDate:        time.Time(m.CashTransactionDate).Format(dateLayout),
		CashTransactionKind:        m.CashTransactionKind,
		CashTransactionCategory:    m.CashTransactionCategory,
		CashTransactionDescription: m.CashTransactionDescription,
		CashTransactionAmountIDR:   m.CashTransactionAmountIDR,
		CashTransactionReceiptURL:  m.CashTransactionReceiptURL,
		CashTransactionCreatedBy:   m.CashTransactionCreatedBy,
		CashTransactionCreatedAt:   m.CashTransactionCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCashTransactionResponseList(models []model.CashTransactionModel) []CashTransactionResponse {
	result := make([]CashTransactionResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCashTransactionResponse(&m))
	}
	return result
}
