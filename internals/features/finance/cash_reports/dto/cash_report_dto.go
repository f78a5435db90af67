package dto

import (
	"time"

	"github.com/google/uuid"

	"fkmb_backend/internals/features/finance/cash_reports/model"
)

const dateLayout = "2006-01-02"

// 🔹 Request generate laporan kas
type GenerateReportRequest struct {
	CashReportPeriodID uuid.UUID `json:"cash_report_period_id" validate:"required"`
	CashReportLabel    string    `json:"cash_report_label" validate:"required,max=50"`
	StartDate          *string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type CashReportResponse struct {
	CashReportID                uuid.UUID  `json:"cash_report_id"`
	CashReportPeriodID          uuid.UUID  `json:"cash_report_period_id"`
	CashReportLabel             string     `json:"cash_report_label"`
	CashReportTotalInflowIDR    int64      `json:"cash_report_total_inflow_idr"`
	CashReportTotalOutflowIDR   int64      `json:"cash_report_total_outflow_idr"`
	CashReportOpeningBalanceIDR int64      `json:"cash_report_opening_balance_idr"`
	CashReportClosingBalanceIDR int64      `json:"cash_report_closing_balance_idr"`
	CashReportRangeStart        *string    `json:"cash_report_range_start,omitempty"`
	CashReportRangeEnd          *string    `json:"cash_report_range_end,omitempty"`
	CashReportGeneratedBy       *uuid.UUID `json:"cash_report_generated_by,omitempty"`
	CashReportGeneratedAt       string     `json:"cash_report_generated_at"`
}

func ToCashReportResponse(m *model.CashReportModel) *CashReportResponse {
	resp := &CashReportResponse{
		CashReportID:                m.CashReportID,
		CashReportPeriodID:          m.CashReportPeriodID,
		CashReportLabel:             m.CashReportLabel,
		CashReportTotalInflowIDR:    m.CashReportTotalInflowIDR,
		CashReportTotalOutflowIDR:   m.CashReportTotalOutflowIDR,
		CashReportOpeningBalanceIDR: m.CashReportOpeningBalanceIDR,
		CashReportClosingBalanceIDR: m.CashReportClosingBalanceIDR,
		CashReportGeneratedBy:       m.CashReportGeneratedBy,
		CashReportGeneratedAt:       m.CashReportGeneratedAt.Format("2006-01-02 15:04:05"),
	}
	if m.CashReportRangeStart != nil {
		s := time.Time(*m.CashReportRangeStart).Format(dateLayout)
		resp.CashReportRangeStart = &s
	}
	if m.CashReportRangeEnd != nil {
		s := time.Time(*m.CashReportRangeEnd).Format(dateLayout)
		resp.CashReportRangeEnd = &s
	}
	return resp
}

func ToCashReportResponseList(models []model.CashReportModel) []CashReportResponse {
	result := make([]CashReportResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCashReportResponse(&m))
	}
	return result
}
