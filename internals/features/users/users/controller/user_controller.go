package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	authservice "fkmb_backend/internals/features/users/auth/service"
	"fkmb_backend/internals/features/users/users/dto"
	"fkmb_backend/internals/features/users/users/model"
	helper "fkmb_backend/internals/helpers"
	"fkmb_backend/internals/services/storage"
)

type UserController struct {
	DB      *gorm.DB
	Storage *storage.LocalStorage
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Storage: storage.NewLocalStorage()}
}

// 🟢 POST /api/a/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	hashed, err := authservice.HashPassword(req.UserPassword)
	if err != nil {
		return err
	}

	user := req.ToModel(hashed)
	if err := ctrl.DB.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return apperrors.Conflict("Email sudah terdaftar")
		}
		return apperrors.Internal("Gagal menyimpan user", err)
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.ToUserResponse(user))
}

// 🟢 GET /api/a/users
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.UserModel{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		base = base.Where("user_name ILIKE ? OR user_email ILIKE ? OR user_nim ILIKE ?", like, like, like)
	}
	if deptID := c.Query("department_id"); deptID != "" {
		base = base.Where("user_department_id = ?", deptID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung user", err)
	}

	var users []model.UserModel
	if err := base.
		Order("user_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return apperrors.Internal("Gagal mengambil user", err)
	}

	return helper.JsonList(c, "Daftar user berhasil diambil",
		dto.ToUserResponseList(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/users/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		return apperrors.NotFound("User tidak ditemukan")
	}
	return helper.JsonOK(c, "User berhasil ditemukan", dto.ToUserResponse(&user))
}

// 🟡 PATCH /api/a/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		return apperrors.NotFound("User tidak ditemukan")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.UserNIM != nil {
		updates["user_nim"] = *req.UserNIM
	}
	if req.UserPhone != nil {
		updates["user_phone"] = *req.UserPhone
	}
	if req.UserFaculty != nil {
		updates["user_faculty"] = *req.UserFaculty
	}
	if req.UserStudyProgram != nil {
		updates["user_study_program"] = *req.UserStudyProgram
	}
	if req.UserClassYear != nil {
		updates["user_class_year"] = *req.UserClassYear
	}
	if req.UserRoleID != nil {
		updates["user_role_id"] = *req.UserRoleID
	}
	if req.UserDepartmentID != nil {
		updates["user_department_id"] = *req.UserDepartmentID
	}
	if req.UserIsActive != nil {
		updates["user_is_active"] = *req.UserIsActive
	}
	if len(updates) == 0 {
		return apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return apperrors.Internal("Gagal memperbarui user", err)
	}
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		return apperrors.Internal("Gagal memuat user terbaru", err)
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.ToUserResponse(&user))
}

// 🟡 POST /api/a/users/:id/avatar (multipart, dikonversi ke webp)
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		return apperrors.NotFound("User tidak ditemukan")
	}

	file, err := c.FormFile("avatar")
	if err != nil || file == nil {
		return apperrors.Validation("File avatar wajib diisi", nil)
	}

	url, err := ctrl.Storage.SaveImage("avatars", file)
	if err != nil {
		return apperrors.Validation(err.Error(), nil)
	}

	if err := ctrl.DB.Model(&user).Update("user_avatar_url", url).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan avatar", err)
	}
	user.UserAvatarURL = &url
	return helper.JsonUpdated(c, "Avatar berhasil diperbarui", dto.ToUserResponse(&user))
}

// 🔴 DELETE /api/a/users/:id (soft delete)
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result := ctrl.DB.Where("user_id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus user", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus")
}
