package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/activities/events/dto"
	"fkmb_backend/internals/features/activities/events/model"
	helper "fkmb_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// 🟢 POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &userID
	}

	event := req.ToModel(createdBy)
	if err := ctrl.DB.Create(event).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan kegiatan", err)
	}
	return helper.JsonCreated(c, "Kegiatan berhasil dibuat", dto.ToEventResponse(event))
}

// 🟢 GET /api/u/events?status=&type=&department_id=
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.EventModel{})
	if status := c.Query("status"); status != "" {
		base = base.Where("event_status = ?", status)
	}
	if eventType := c.Query("type"); eventType != "" {
		base = base.Where("event_type = ?", eventType)
	}
	if deptID := c.Query("department_id"); deptID != "" {
		base = base.Where("event_department_id = ?", deptID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung kegiatan", err)
	}

	var events []model.EventModel
	if err := base.
		Order("event_start_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		return apperrors.Internal("Gagal mengambil kegiatan", err)
	}

	return helper.JsonList(c, "Daftar kegiatan berhasil diambil",
		dto.ToEventResponseList(events),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		return apperrors.NotFound("Kegiatan tidak ditemukan")
	}
	return helper.JsonOK(c, "Kegiatan berhasil ditemukan", dto.ToEventResponse(&event))
}

// 🟡 PATCH /api/a/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		return apperrors.NotFound("Kegiatan tidak ditemukan")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.EventName != nil {
		updates["event_name"] = *req.EventName
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventStartAt != nil {
		updates["event_start_at"] = *req.EventStartAt
	}
	if req.EventEndAt != nil {
		updates["event_end_at"] = *req.EventEndAt
	}
	if req.EventType != nil {
		updates["event_type"] = *req.EventType
	}
	if req.EventStatus != nil {
		if !model.IsValidEventStatus(*req.EventStatus) {
			return apperrors.Validation("Status kegiatan tidak valid", map[string][]string{
				"event_status": {"harus salah satu dari: upcoming ongoing completed cancelled"},
			})
		}
		updates["event_status"] = *req.EventStatus
	}
	if req.EventDepartmentID != nil {
		updates["event_department_id"] = *req.EventDepartmentID
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&event).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui kegiatan", err)
	}
	if err := ctrl.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		return apperrors.Internal("Gagal memuat kegiatan terbaru", err)
	}
	return helper.JsonUpdated(c, "Kegiatan berhasil diperbarui", dto.ToEventResponse(&event))
}

// 🔴 DELETE /api/a/events/:id (soft delete)
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("event_id = ?", id).Delete(&model.EventModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus kegiatan", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Kegiatan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kegiatan berhasil dihapus")
}
