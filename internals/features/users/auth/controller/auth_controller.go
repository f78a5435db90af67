package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/users/auth/dto"
	"fkmb_backend/internals/features/users/auth/service"
	userdto "fkmb_backend/internals/features/users/users/dto"
	usermodel "fkmb_backend/internals/features/users/users/model"
	helper "fkmb_backend/internals/helpers"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: service.NewAuthService(db)}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	user, pair, err := ctrl.Service.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":          userdto.ToUserResponse(user),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// 🟢 POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	pair, err := ctrl.Service.Refresh(req.RefreshToken)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Token berhasil diperbarui", pair)
}

// 🟢 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := ctrl.Service.Logout(userID); err != nil {
		return err
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟢 GET /api/auth/me
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user usermodel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return apperrors.NotFound("User tidak ditemukan")
	}
	return helper.JsonOK(c, "Profil berhasil diambil", userdto.ToUserResponse(&user))
}

// 🟡 POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	if err := ctrl.Service.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return helper.JsonOK(c, "Password berhasil diubah", nil)
}

// 🟢 POST /api/auth/forgot-password
// Selalu balas sukses supaya email terdaftar tidak bisa ditebak.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	if err := ctrl.Service.ForgotPassword(req.Email); err != nil {
		return err
	}
	return helper.JsonOK(c, "Jika email terdaftar, link reset password sudah dikirim", nil)
}

// 🟢 POST /api/auth/reset-password
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	if err := ctrl.Service.ResetPassword(req.Token, req.NewPassword); err != nil {
		return err
	}
	return helper.JsonOK(c, "Password berhasil direset, silakan login ulang", nil)
}
