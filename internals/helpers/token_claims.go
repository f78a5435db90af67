// file: internals/helpers/token_claims.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fkmb_backend/internals/apperrors"
)

// GetUserIDFromToken mengambil user_id yang disimpan AuthMiddleware di locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, apperrors.Unauthorized("Unauthorized - missing user ID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Unauthorized("Unauthorized - invalid user ID")
	}
	return id, nil
}

// GetRoleFromToken mengambil nama role dari locals (diisi AuthMiddleware).
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("user_role").(string)
	if !ok || role == "" {
		return "", apperrors.Unauthorized("Unauthorized - missing role information")
	}
	return role, nil
}

// ParseUUIDParam baca path param sebagai UUID atau balas error validasi.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.Validation("Parameter tidak valid", map[string][]string{
			name: {"harus berupa UUID"},
		})
	}
	return id, nil
}
