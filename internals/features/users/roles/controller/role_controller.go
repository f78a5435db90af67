package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/users/roles/dto"
	"fkmb_backend/internals/features/users/roles/model"
	helper "fkmb_backend/internals/helpers"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

// 🟢 POST /api/a/roles
func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	role, err := req.ToModel()
	if err != nil {
		return apperrors.Internal("Gagal menyiapkan data role", err)
	}
	if err := ctrl.DB.Create(role).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return apperrors.Conflict("Nama role sudah dipakai")
		}
		return apperrors.Internal("Gagal menyimpan role", err)
	}
	return helper.JsonCreated(c, "Role berhasil dibuat", dto.ToRoleResponse(role))
}

// 🟢 GET /api/a/roles
func (ctrl *RoleController) GetAllRoles(c *fiber.Ctx) error {
	var roles []model.RoleModel
	if err := ctrl.DB.Order("role_created_at ASC").Find(&roles).Error; err != nil {
		return apperrors.Internal("Gagal mengambil role", err)
	}
	return helper.JsonOK(c, "Daftar role berhasil diambil", dto.ToRoleResponseList(roles))
}

// 🟢 GET /api/a/roles/:id
func (ctrl *RoleController) GetRoleByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var role model.RoleModel
	if err := ctrl.DB.Where("role_id = ?", id).First(&role).Error; err != nil {
		return apperrors.NotFound("Role tidak ditemukan")
	}
	return helper.JsonOK(c, "Role berhasil ditemukan", dto.ToRoleResponse(&role))
}

// 🟡 PATCH /api/a/roles/:id
func (ctrl *RoleController) UpdateRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var role model.RoleModel
	if err := ctrl.DB.Where("role_id = ?", id).First(&role).Error; err != nil {
		return apperrors.NotFound("Role tidak ditemukan")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.RoleName != nil {
		updates["role_name"] = *req.RoleName
	}
	if req.RoleDescription != nil {
		updates["role_description"] = *req.RoleDescription
	}
	if req.RolePermissions != nil {
		raw, merr := json.Marshal(*req.RolePermissions)
		if merr != nil {
			return apperrors.Internal("Gagal menyiapkan data role", merr)
		}
		updates["role_permissions"] = datatypes.JSON(raw)
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&role).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return apperrors.Conflict("Nama role sudah dipakai")
		}
		return apperrors.Internal("Gagal memperbarui role", err)
	}
	if err := ctrl.DB.Where("role_id = ?", id).First(&role).Error; err != nil {
		return apperrors.Internal("Gagal memuat role terbaru", err)
	}
	return helper.JsonUpdated(c, "Role berhasil diperbarui", dto.ToRoleResponse(&role))
}

// 🔴 DELETE /api/a/roles/:id (soft delete)
func (ctrl *RoleController) DeleteRole(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("role_id = ?", id).Delete(&model.RoleModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus role", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Role tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Role berhasil dihapus")
}
