package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CashReportModel adalah snapshot laporan kas. Angka dibekukan saat
// generate dan tidak pernah dihitung ulang; laporan baru berarti baris
// baru.
type CashReportModel struct {
	CashReportID                uuid.UUID       `gorm:"column:cash_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cash_report_id"`
	CashReportPeriodID          uuid.UUID       `gorm:"column:cash_report_period_id;type:uuid;not null;index"                json:"cash_report_period_id"`
	CashReportLabel             string          `gorm:"column:cash_report_label;type:varchar(50);not null"                   json:"cash_report_label"`
	CashReportTotalInflowIDR    int64           `gorm:"column:cash_report_total_inflow_idr;not null;default:0"               json:"cash_report_total_inflow_idr"`
	CashReportTotalOutflowIDR   int64           `gorm:"column:cash_report_total_outflow_idr;not null;default:0"              json:"cash_report_total_outflow_idr"`
	CashReportOpeningBalanceIDR int64           `gorm:"column:cash_report_opening_balance_idr;not null;default:0"            json:"cash_report_opening_balance_idr"`
	CashReportClosingBalanceIDR int64           `gorm:"column:cash_report_closing_balance_idr;not null;default:0"            json:"cash_report_closing_balance_idr"`
	CashReportRangeStart        *datatypes.Date `gorm:"column:cash_report_range_start;type:date"                             json:"cash_report_range_start,omitempty"`
	CashReportRangeEnd          *datatypes.Date `gorm:"column:cash_report_range_end;type:date"                               json:"cash_report_range_end,omitempty"`
	CashReportGeneratedBy       *uuid.UUID      `gorm:"column:cash_report_generated_by;type:uuid"                            json:"cash_report_generated_by,omitempty"`
	CashReportGeneratedAt       time.Time       `gorm:"column:cash_report_generated_at;type:timestamptz;autoCreateTime"      json:"cash_report_generated_at"`

	CashReportUpdatedAt time.Time      `gorm:"column:cash_report_updated_at;type:timestamptz;autoUpdateTime" json:"cash_report_updated_at"`
	CashReportDeletedAt gorm.DeletedAt `gorm:"column:cash_report_deleted_at;type:timestamptz;index"          json:"cash_report_deleted_at,omitempty"`
}

func (CashReportModel) TableName() string {
	return "cash_reports"
}
