package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jenis transaksi kas
const (
	TransactionKindInflow  = "inflow"
	TransactionKindOutflow = "outflow"
)

// CashTransactionModel adalah satu mutasi kas. Dihapus permanen (hard
// delete); penghapusan langsung memicu hitung ulang saldo periode.
type CashTransactionModel struct {
	CashTransactionID          uuid.UUID      `gorm:"column:cash_transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cash_transaction_id"`
	CashTransactionPeriodID    uuid.UUID      `gorm:"column:cash_transaction_period_id;type:uuid;not null;index"                json:"cash_transaction_period_id"`
	CashTransactionDate        datatypes.Date `gorm:"column:cash_transaction_date;type:date;not null"                           json:"cash_transaction_date"`
	CashTransactionKind        string         `gorm:"column:cash_transaction_kind;type:varchar(10);not null"                    json:"cash_transaction_kind"`
	CashTransactionCategory    *string        `gorm:"column:cash_transaction_category;type:varchar(100)"                        json:"cash_transaction_category,omitempty"`
	CashTransactionDescription string         `gorm:"column:cash_transaction_description;type:text;not null"                    json:"cash_transaction_description"`
	CashTransactionAmountIDR   int64          `gorm:"column:cash_transaction_amount_idr;not null"                               json:"cash_transaction_amount_idr"`
	CashTransactionReceiptURL  *string        `gorm:"column:cash_transaction_receipt_url;type:text"                             json:"cash_transaction_receipt_url,omitempty"`
	CashTransactionCreatedBy   *uuid.UUID     `gorm:"column:cash_transaction_created_by;type:uuid"                              json:"cash_transaction_created_by,omitempty"`

	CashTransactionCreatedAt time.Time `gorm:"column:cash_transaction_created_at;type:timestamptz;autoCreateTime" json:"cash_transaction_created_at"`
	CashTransactionUpdatedAt time.Time `gorm:"column:cash_transaction_updated_at;type:timestamptz;autoUpdateTime" json:"cash_transaction_updated_at"`
}

func (CashTransactionModel) TableName() string {
	return "cash_transactions"
}

func IsValidTransactionKind(k string) bool {
	return k == TransactionKindInflow || k == TransactionKindOutflow
}
