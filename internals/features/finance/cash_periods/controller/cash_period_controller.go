package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_periods/dto"
	"fkmb_backend/internals/features/finance/cash_periods/model"
	"fkmb_backend/internals/features/finance/cash_periods/service"
	helper "fkmb_backend/internals/helpers"
)

type CashPeriodController struct {
	DB      *gorm.DB
	Service *service.CashPeriodService
}

func NewCashPeriodController(db *gorm.DB) *CashPeriodController {
	return &CashPeriodController{DB: db, Service: service.NewCashPeriodService(db)}
}

// 🟢 POST /api/a/cash-periods
func (ctrl *CashPeriodController) CreatePeriod(c *fiber.Ctx) error {
	var req dto.CreateCashPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	period := req.ToModel()
	if err := ctrl.DB.Create(period).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan periode kas", err)
	}
	return helper.JsonCreated(c, "Periode kas berhasil dibuat", dto.ToCashPeriodResponse(period))
}

// 🟢 GET /api/a/cash-periods
func (ctrl *CashPeriodController) GetAllPeriods(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CashPeriodModel{}).Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung periode kas", err)
	}

	var periods []model.CashPeriodModel
	if err := ctrl.DB.
		Order("cash_period_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&periods).Error; err != nil {
		return apperrors.Internal("Gagal mengambil periode kas", err)
	}

	return helper.JsonList(c, "Daftar periode kas berhasil diambil",
		dto.ToCashPeriodResponseList(periods),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/cash-periods/active
func (ctrl *CashPeriodController) GetActivePeriod(c *fiber.Ctx) error {
	var period model.CashPeriodModel
	if err := ctrl.DB.Where("cash_period_is_active = ?", true).First(&period).Error; err != nil {
		return apperrors.NotFound("Belum ada periode kas aktif")
	}
	return helper.JsonOK(c, "Periode kas aktif berhasil diambil", dto.ToCashPeriodResponse(&period))
}

// 🟢 GET /api/a/cash-periods/:id
func (ctrl *CashPeriodController) GetPeriodByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var period model.CashPeriodModel
	if err := ctrl.DB.Where("cash_period_id = ?", id).First(&period).Error; err != nil {
		return apperrors.NotFound("Periode kas tidak ditemukan")
	}
	return helper.JsonOK(c, "Periode kas berhasil ditemukan", dto.ToCashPeriodResponse(&period))
}

// 🟡 PATCH /api/a/cash-periods/:id
func (ctrl *CashPeriodController) UpdatePeriod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var period model.CashPeriodModel
	if err := ctrl.DB.Where("cash_period_id = ?", id).First(&period).Error; err != nil {
		return apperrors.NotFound("Periode kas tidak ditemukan")
	}

	var req dto.UpdateCashPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.CashPeriodLabel != nil {
		updates["cash_period_label"] = *req.CashPeriodLabel
	}
	if req.CashPeriodDescription != nil {
		updates["cash_period_description"] = *req.CashPeriodDescription
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&period).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui periode kas", err)
	}
	if err := ctrl.DB.Where("cash_period_id = ?", id).First(&period).Error; err != nil {
		return apperrors.Internal("Gagal memuat periode kas terbaru", err)
	}
	return helper.JsonUpdated(c, "Periode kas berhasil diperbarui", dto.ToCashPeriodResponse(&period))
}

// 🟡 POST /api/a/cash-periods/:id/activate
func (ctrl *CashPeriodController) ActivatePeriod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	period, err := ctrl.Service.SetActivePeriod(id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Periode kas berhasil diaktifkan", dto.ToCashPeriodResponse(period))
}

// 🔴 DELETE /api/a/cash-periods/:id (soft delete)
func (ctrl *CashPeriodController) DeletePeriod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("cash_period_id = ?", id).Delete(&model.CashPeriodModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus periode kas", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Periode kas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Periode kas berhasil dihapus")
}
