package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/organization/departments/dto"
	"fkmb_backend/internals/features/organization/departments/model"
	helper "fkmb_backend/internals/helpers"
	"fkmb_backend/internals/services/storage"
)

type DepartmentController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Storage: storage.NewLocalStorage()}
}

// 🟢 POST /api/a/departments
func (ctrl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	dept := req.ToModel()
	if err := ctrl.DB.Create(dept).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan departemen", err)
	}
	return helper.JsonCreated(c, "Departemen berhasil dibuat", dto.ToDepartmentResponse(dept))
}

// 🟢 GET /api/u/departments
func (ctrl *DepartmentController) GetAllDepartments(c *fiber.Ctx) error {
	var departments []model.DepartmentModel
	if err := ctrl.DB.Order("department_name ASC").Find(&departments).Error; err != nil {
		return apperrors.Internal("Gagal mengambil departemen", err)
	}
	return helper.JsonOK(c, "Daftar departemen berhasil diambil", dto.ToDepartmentResponseList(departments))
}

// 🟢 GET /api/u/departments/:id
func (ctrl *DepartmentController) GetDepartmentByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var dept model.DepartmentModel
	if err := ctrl.DB.Where("department_id = ?", id).First(&dept).Error; err != nil {
		return apperrors.NotFound("Departemen tidak ditemukan")
	}
	return helper.JsonOK(c, "Departemen berhasil ditemukan", dto.ToDepartmentResponse(&dept))
}

// 🟡 PATCH /api/a/departments/:id
func (ctrl *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var dept model.DepartmentModel
	if err := ctrl.DB.Where("department_id = ?", id).First(&dept).Error; err != nil {
		return apperrors.NotFound("Departemen tidak ditemukan")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.DepartmentName != nil {
		updates["department_name"] = *req.DepartmentName
	}
	if req.DepartmentDescription != nil {
		updates["department_description"] = *req.DepartmentDescription
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&dept).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui departemen", err)
	}
	if err := ctrl.DB.Where("department_id = ?", id).First(&dept).Error; err != nil {
		return apperrors.Internal("Gagal memuat departemen terbaru", err)
	}
	return helper.JsonUpdated(c, "Departemen berhasil diperbarui", dto.ToDepartmentResponse(&dept))
}

// 🟡 POST /api/a/departments/:id/logo (multipart, dikonversi ke webp)
func (ctrl *DepartmentController) UploadLogo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var dept model.DepartmentModel
	if err := ctrl.DB.Where("department_id = ?", id).First(&dept).Error; err != nil {
		return apperrors.NotFound("Departemen tidak ditemukan")
	}

	file, err := c.FormFile("logo")
	if err != nil || file == nil {
		return apperrors.Validation("File logo wajib diisi", nil)
	}

	url, err := ctrl.Storage.SaveImage("departments", file)
	if err != nil {
		return apperrors.Validation(err.Error(), nil)
	}

	if err := ctrl.DB.Model(&dept).Update("department_logo_url", url).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan logo", err)
	}
	dept.DepartmentLogoURL = &url
	return helper.JsonUpdated(c, "Logo berhasil diperbarui", dto.ToDepartmentResponse(&dept))
}

// 🔴 DELETE /api/a/departments/:id (soft delete)
func (ctrl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("department_id = ?", id).Delete(&model.DepartmentModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus departemen", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Departemen tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Departemen berhasil dihapus")
}
