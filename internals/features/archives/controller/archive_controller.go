package controller

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/archives/dto"
	"fkmb_backend/internals/features/archives/model"
	helper "fkmb_backend/internals/helpers"
	"fkmb_backend/internals/services/storage"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type ArchiveController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewArchiveController(db *gorm.DB) *ArchiveController {
	return &ArchiveController{DB: db, Storage: storage.NewLocalStorage()}
}

// 🟢 POST /api/a/archives (multipart: file + metadata form fields)
func (ctrl *ArchiveController) CreateArchive(c *fiber.Ctx) error {
	req := dto.CreateArchiveRequest{
		ArchiveTitle:       c.FormValue("archive_title"),
		ArchiveDescription: c.FormValue("archive_description"),
		ArchiveCategory:    c.FormValue("archive_category"),
	}
	if raw := c.FormValue("archive_department_id"); raw != "" {
		deptID, err := uuid.Parse(raw)
		if err != nil {
			return apperrors.Validation("Parameter tidak valid", map[string][]string{
				"archive_department_id": {"harus berupa UUID"},
			})
		}
		req.ArchiveDepartmentID = &deptID
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return apperrors.Validation("File arsip wajib diisi", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	var url string
	if imageExtensions[ext] {
		url, err = ctrl.Storage.SaveImage("archives", file)
	} else {
		url, err = ctrl.Storage.SaveFile("archives", file)
	}
	if err != nil {
		return apperrors.Validation(err.Error(), nil)
	}

	var uploadedBy *uuid.UUID
	if userID, uerr := helper.GetUserIDFromToken(c); uerr == nil {
		uploadedBy = &userID
	}

	archive := &model.ArchiveModel{
		ArchiveTitle:        req.ArchiveTitle,
		ArchiveDescription:  req.ArchiveDescription,
		ArchiveCategory:     req.ArchiveCategory,
		ArchiveFileURL:      url,
		ArchiveFileType:     strings.TrimPrefix(ext, "."),
		ArchiveFileSize:     file.Size,
		ArchiveDepartmentID: req.ArchiveDepartmentID,
		ArchiveUploadedBy:   uploadedBy,
	}
	if err := ctrl.DB.Create(archive).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan arsip", err)
	}
	return helper.JsonCreated(c, "Arsip berhasil diunggah", dto.ToArchiveResponse(archive))
}

// 🟢 GET /api/u/archives?category=&department_id=&q=
func (ctrl *ArchiveController) GetAllArchives(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.ArchiveModel{})
	if category := c.Query("category"); category != "" {
		base = base.Where("archive_category = ?", category)
	}
	if deptID := c.Query("department_id"); deptID != "" {
		base = base.Where("archive_department_id = ?", deptID)
	}
	if q := c.Query("q"); q != "" {
		base = base.Where("archive_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung arsip", err)
	}

	var archives []model.ArchiveModel
	if err := base.
		Order("archive_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&archives).Error; err != nil {
		return apperrors.Internal("Gagal mengambil arsip", err)
	}

	return helper.JsonList(c, "Daftar arsip berhasil diambil",
		dto.ToArchiveResponseList(archives),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/u/archives/:id
func (ctrl *ArchiveController) GetArchiveByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var archive model.ArchiveModel
	if err := ctrl.DB.Where("archive_id = ?", id).First(&archive).Error; err != nil {
		return apperrors.NotFound("Arsip tidak ditemukan")
	}
	return helper.JsonOK(c, "Arsip berhasil ditemukan", dto.ToArchiveResponse(&archive))
}

// 🟡 PATCH /api/a/archives/:id (metadata saja)
func (ctrl *ArchiveController) UpdateArchive(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var archive model.ArchiveModel
	if err := ctrl.DB.Where("archive_id = ?", id).First(&archive).Error; err != nil {
		return apperrors.NotFound("Arsip tidak ditemukan")
	}

	var req dto.UpdateArchiveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.ArchiveTitle != nil {
		updates["archive_title"] = *req.ArchiveTitle
	}
	if req.ArchiveDescription != nil {
		updates["archive_description"] = *req.ArchiveDescription
	}
	if req.ArchiveCategory != nil {
		updates["archive_category"] = *req.ArchiveCategory
	}
	if req.ArchiveDepartmentID != nil {
		updates["archive_department_id"] = *req.ArchiveDepartmentID
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&archive).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui arsip", err)
	}
	if err := ctrl.DB.Where("archive_id = ?", id).First(&archive).Error; err != nil {
		return apperrors.Internal("Gagal memuat arsip terbaru", err)
	}
	return helper.JsonUpdated(c, "Arsip berhasil diperbarui", dto.ToArchiveResponse(&archive))
}

// 🔴 DELETE /api/a/archives/:id (soft delete, file fisik dibiarkan)
func (ctrl *ArchiveController) DeleteArchive(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("archive_id = ?", id).Delete(&model.ArchiveModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus arsip", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Arsip tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Arsip berhasil dihapus")
}
