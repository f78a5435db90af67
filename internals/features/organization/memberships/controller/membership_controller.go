package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/organization/memberships/dto"
	"fkmb_backend/internals/features/organization/memberships/model"
	helper "fkmb_backend/internals/helpers"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

// 🟢 POST /api/a/memberships
func (ctrl *MembershipController) CreateMembership(c *fiber.Ctx) error {
	var req dto.CreateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	membership, err := req.ToModel()
	if err != nil {
		return err
	}
	if err := ctrl.DB.Create(membership).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan kepengurusan", err)
	}
	return helper.JsonCreated(c, "Kepengurusan berhasil dibuat", dto.ToMembershipResponse(membership))
}

// 🟢 GET /api/u/memberships?period=&department_id=&user_id=
func (ctrl *MembershipController) GetAllMemberships(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.MembershipModel{})
	if period := c.Query("period"); period != "" {
		base = base.Where("membership_period = ?", period)
	}
	if deptID := c.Query("department_id"); deptID != "" {
		base = base.Where("membership_department_id = ?", deptID)
	}
	if userID := c.Query("user_id"); userID != "" {
		base = base.Where("membership_user_id = ?", userID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung kepengurusan", err)
	}

	var memberships []model.MembershipModel
	if err := base.
		Order("membership_start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&memberships).Error; err != nil {
		return apperrors.Internal("Gagal mengambil kepengurusan", err)
	}

	return helper.JsonList(c, "Daftar kepengurusan berhasil diambil",
		dto.ToMembershipResponseList(memberships),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/memberships/:id
func (ctrl *MembershipController) GetMembershipByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var membership model.MembershipModel
	if err := ctrl.DB.Where("membership_id = ?", id).First(&membership).Error; err != nil {
		return apperrors.NotFound("Kepengurusan tidak ditemukan")
	}
	return helper.JsonOK(c, "Kepengurusan berhasil ditemukan", dto.ToMembershipResponse(&membership))
}

// 🟡 PATCH /api/a/memberships/:id
func (ctrl *MembershipController) UpdateMembership(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var membership model.MembershipModel
	if err := ctrl.DB.Where("membership_id = ?", id).First(&membership).Error; err != nil {
		return apperrors.NotFound("Kepengurusan tidak ditemukan")
	}

	var req dto.UpdateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.MembershipPosition != nil {
		updates["membership_position"] = *req.MembershipPosition
	}
	if req.MembershipPeriod != nil {
		updates["membership_period"] = *req.MembershipPeriod
	}
	if req.MembershipEndDate != nil {
		end, perr := time.Parse("2006-01-02", *req.MembershipEndDate)
		if perr != nil {
			return apperrors.Validation("Tanggal tidak valid", map[string][]string{
				"membership_end_date": {"format tanggal harus 2006-01-02"},
			})
		}
		updates["membership_end_date"] = datatypes.Date(end)
	}
	if req.MembershipIsActive != nil {
		updates["membership_is_active"] = *req.MembershipIsActive
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&membership).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui kepengurusan", err)
	}
	if err := ctrl.DB.Where("membership_id = ?", id).First(&membership).Error; err != nil {
		return apperrors.Internal("Gagal memuat kepengurusan terbaru", err)
	}
	return helper.JsonUpdated(c, "Kepengurusan berhasil diperbarui", dto.ToMembershipResponse(&membership))
}

// 🔴 DELETE /api/a/memberships/:id (soft delete)
func (ctrl *MembershipController) DeleteMembership(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("membership_id = ?", id).Delete(&model.MembershipModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus kepengurusan", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Kepengurusan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kepengurusan berhasil dihapus")
}
