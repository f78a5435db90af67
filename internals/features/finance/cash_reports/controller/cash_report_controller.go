package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_reports/dto"
	"fkmb_backend/internals/features/finance/cash_reports/model"
	"fkmb_backend/internals/features/finance/cash_reports/service"
	helper "fkmb_backend/internals/helpers"
)

type CashReportController struct {
	DB      *gorm.DB
	Service *service.CashReportService
}

func NewCashReportController(db *gorm.DB) *CashReportController {
	return &CashReportController{DB: db, Service: service.NewCashReportService(db)}
}

// 🟢 POST /api/a/cash-reports/generate
// Laporan bersifat snapshot: tidak ada endpoint update. Generate ulang
// berarti membuat baris laporan baru.
func (ctrl *CashReportController) GenerateReport(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	input := service.GenerateReportInput{
		PeriodID: req.CashReportPeriodID,
		Label:    req.CashReportLabel,
	}
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return apperrors.Validation("Tanggal tidak valid", map[string][]string{
				"start_date": {"format tanggal harus 2006-01-02"},
			})
		}
		input.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return apperrors.Validation("Tanggal tidak valid", map[string][]string{
				"end_date": {"format tanggal harus 2006-01-02"},
			})
		}
		input.EndDate = &t
	}

	var generatedBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		generatedBy = &userID
	}
	input.GeneratedBy = generatedBy

	report, err := ctrl.Service.GenerateReport(input)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Laporan kas berhasil dibuat", dto.ToCashReportResponse(report))
}

// 🟢 GET /api/a/cash-reports
func (ctrl *CashReportController) GetAllReports(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.CashReportModel{})
	if periodID := c.Query("period_id"); periodID != "" {
		base = base.Where("cash_report_period_id = ?", periodID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung laporan", err)
	}

	var reports []model.CashReportModel
	if err := base.
		Order("cash_report_generated_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&reports).Error; err != nil {
		return apperrors.Internal("Gagal mengambil laporan", err)
	}

	return helper.JsonList(c, "Daftar laporan berhasil diambil",
		dto.ToCashReportResponseList(reports),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/cash-reports/:id
func (ctrl *CashReportController) GetReportByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var report model.CashReportModel
	if err := ctrl.DB.Where("cash_report_id = ?", id).First(&report).Error; err != nil {
		return apperrors.NotFound("Laporan kas tidak ditemukan")
	}
	return helper.JsonOK(c, "Laporan kas berhasil ditemukan", dto.ToCashReportResponse(&report))
}

// 🔴 DELETE /api/a/cash-reports/:id (soft delete, angka tidak pernah diubah)
func (ctrl *CashReportController) DeleteReport(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("cash_report_id = ?", id).Delete(&model.CashReportModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus laporan", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Laporan kas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Laporan kas berhasil dihapus")
}
