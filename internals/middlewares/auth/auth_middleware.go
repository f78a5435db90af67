package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/configs"
)

// AuthMiddleware memverifikasi access token dan menyimpan identitas user
// di locals (user_id, user_role) untuk dipakai handler berikutnya.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return apperrors.Unauthorized("Token tidak ditemukan")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return apperrors.Unauthorized("Token tidak valid atau sudah kadaluarsa")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperrors.Unauthorized("Token tidak valid")
		}

		userID, ok := claims["id"].(string)
		if !ok || userID == "" {
			return apperrors.Unauthorized("Token tidak valid")
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", userID)
		c.Locals("user_role", role)

		return c.Next()
	}
}
