package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/constants"
)

// OnlyRoles membatasi akses hanya untuk role tertentu.
func OnlyRoles(errorMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return apperrors.Unauthorized("Role tidak ditemukan di token")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return apperrors.Forbidden(errorMessage)
	}
}

// RequirePermission membatasi akses berdasarkan tag permission,
// bukan daftar role eksplisit.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return apperrors.Unauthorized("Role tidak ditemukan di token")
		}

		if !constants.HasPermission(role, permission) {
			return apperrors.Forbidden(fmt.Sprintf("❌ Role %s tidak punya izin untuk aksi ini.", role))
		}

		return c.Next()
	}
}

// SelfOrRoles mengizinkan user mengakses datanya sendiri (param :id sama
// dengan user_id di token) atau user dengan role tertentu.
func SelfOrRoles(param string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		userID, _ := c.Locals("user_id").(string)

		if userID != "" && c.Params(param) == userID {
			return c.Next()
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return apperrors.Forbidden(fmt.Sprintf("❌ Role %s tidak punya izin untuk aksi ini.", role))
	}
}
