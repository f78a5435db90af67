package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashPeriodModel adalah satu periode pembukuan kas.
// Saldo akhir selalu hasil hitung ulang dari seluruh transaksi hidup,
// tidak pernah di-set langsung dari request.
type CashPeriodModel struct {
	CashPeriodID                uuid.UUID `gorm:"column:cash_period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cash_period_id"`
	CashPeriodLabel             string    `gorm:"column:cash_period_label;type:varchar(20);not null"                   json:"cash_period_label"`
	CashPeriodOpeningBalanceIDR int64     `gorm:"column:cash_period_opening_balance_idr;not null;default:0"            json:"cash_period_opening_balance_idr"`
	CashPeriodClosingBalanceIDR int64     `gorm:"column:cash_period_closing_balance_idr;not null;default:0"            json:"cash_period_closing_balance_idr"`
	CashPeriodDescription       string    `gorm:"column:cash_period_description;type:text"                             json:"cash_period_description"`
	CashPeriodIsActive          bool      `gorm:"column:cash_period_is_active;not null;default:false"                  json:"cash_period_is_active"`

	CashPeriodCreatedAt time.Time      `gorm:"column:cash_period_created_at;type:timestamptz;autoCreateTime" json:"cash_period_created_at"`
	CashPeriodUpdatedAt time.Time      `gorm:"column:cash_period_updated_at;type:timestamptz;autoUpdateTime" json:"cash_period_updated_at"`
	CashPeriodDeletedAt gorm.DeletedAt `gorm:"column:cash_period_deleted_at;type:timestamptz;index"          json:"cash_period_deleted_at,omitempty"`
}

func (CashPeriodModel) TableName() string {
	return "cash_periods"
}
