package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/activities/attendance/dto"
	"fkmb_backend/internals/features/activities/attendance/model"
	"fkmb_backend/internals/features/activities/attendance/service"
	helper "fkmb_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.NewAttendanceService(db)}
}

// 🟢 POST /api/u/attendance/check-in  (anggota scan token)
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	record, err := ctrl.Service.CheckInByToken(userID, req.Token)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Absensi berhasil dicatat", dto.ToAttendanceResponse(record))
}

// 🟢 POST /api/a/attendance/manual  (pengurus input langsung)
func (ctrl *AttendanceController) CheckInManual(c *fiber.Ctx) error {
	var req dto.ManualAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	record, err := ctrl.Service.CheckInManual(req.AttendanceUserID, req.AttendanceEventID, req.AttendanceStatus, req.AttendanceNote)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Absensi manual berhasil dicatat", dto.ToAttendanceResponse(record))
}

// 🟢 GET /api/a/attendance/by-event/:event_id
func (ctrl *AttendanceController) GetByEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_event_id = ?", eventID)
	if status := c.Query("status"); status != "" {
		base = base.Where("attendance_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung absensi", err)
	}

	var records []model.AttendanceModel
	if err := base.
		Order("attendance_check_in_time DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		return apperrors.Internal("Gagal mengambil absensi", err)
	}

	return helper.JsonList(c, "Daftar absensi berhasil diambil",
		dto.ToAttendanceResponseList(records),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/attendance/me  (riwayat absensi user login)
func (ctrl *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung absensi", err)
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_user_id = ?", userID).
		Order("attendance_check_in_time DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		return apperrors.Internal("Gagal mengambil absensi", err)
	}

	return helper.JsonList(c, "Riwayat absensi berhasil diambil",
		dto.ToAttendanceResponseList(records),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/attendance/:id
func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	record, err := ctrl.Service.UpdateStatus(id, req.AttendanceStatus, req.AttendanceNote)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Absensi berhasil diperbarui", dto.ToAttendanceResponse(record))
}

// 🔴 DELETE /api/a/attendance/:id (hard delete)
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Absensi berhasil dihapus permanen")
}
