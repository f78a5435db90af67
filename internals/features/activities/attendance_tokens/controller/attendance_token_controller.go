package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/activities/attendance_tokens/dto"
	"fkmb_backend/internals/features/activities/attendance_tokens/model"
	"fkmb_backend/internals/features/activities/attendance_tokens/service"
	helper "fkmb_backend/internals/helpers"
)

type AttendanceTokenController struct {
	DB      *gorm.DB
	Service *service.TokenService
}

func NewAttendanceTokenController(db *gorm.DB) *AttendanceTokenController {
	return &AttendanceTokenController{DB: db, Service: service.NewTokenService(db)}
}

// 🟢 POST /api/a/attendance-tokens
func (ctrl *AttendanceTokenController) CreateToken(c *fiber.Ctx) error {
	var req dto.CreateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	token, err := ctrl.Service.IssueToken(req.TokenEventID, req.TokenLabel, req.TokenExpiresAt)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Token absensi berhasil dibuat", dto.ToTokenResponse(token))
}

// 🟢 POST /api/a/attendance-tokens/:id/regenerate
func (ctrl *AttendanceTokenController) RegenerateQR(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	token, err := ctrl.Service.Regenerate(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "QR code berhasil dibuat ulang", dto.ToTokenResponse(token))
}

// 🟢 GET /api/a/attendance-tokens/by-event/:event_id
func (ctrl *AttendanceTokenController) GetTokensByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AttendanceTokenModel{}).
		Where("token_event_id = ?", eventID).
		Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung token", err)
	}

	var tokens []model.AttendanceTokenModel
	if err := ctrl.DB.
		Where("token_event_id = ?", eventID).
		Order("token_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&tokens).Error; err != nil {
		return apperrors.Internal("Gagal mengambil token", err)
	}

	return helper.JsonList(c, "Daftar token berhasil diambil",
		dto.ToTokenResponseList(tokens),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/attendance-tokens/:id
func (ctrl *AttendanceTokenController) UpdateToken(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var token model.AttendanceTokenModel
	if err := ctrl.DB.Where("token_id = ?", id).First(&token).Error; err != nil {
		return apperrors.NotFound("Token tidak ditemukan")
	}

	var req dto.UpdateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.TokenLabel != nil {
		updates["token_label"] = *req.TokenLabel
	}
	if req.TokenIsActive != nil {
		updates["token_is_active"] = *req.TokenIsActive
	}
	if req.TokenExpiresAt != nil {
		updates["token_expires_at"] = *req.TokenExpiresAt
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&token).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui token", err)
	}

	if err := ctrl.DB.Where("token_id = ?", id).First(&token).Error; err != nil {
		return apperrors.Internal("Gagal memuat token terbaru", err)
	}
	return helper.JsonUpdated(c, "Token berhasil diperbarui", dto.ToTokenResponse(&token))
}

// 🔴 DELETE /api/a/attendance-tokens/:id (hard delete, permanen)
func (ctrl *AttendanceTokenController) DeleteToken(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("token_id = ?", id).Delete(&model.AttendanceTokenModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus token", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Token tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Token berhasil dihapus permanen")
}
