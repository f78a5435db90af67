package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/features/users/auth/controller"
	"fkmb_backend/internals/middlewares"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// AuthRoutes: login/refresh/forgot/reset publik (dengan rate limit ketat),
// sisanya butuh access token.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	auth.Post("/reset-password", ctrl.ResetPassword)

	protected := auth.Group("/", authmw.AuthMiddleware())
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.GetProfile)
	protected.Post("/change-password", ctrl.ChangePassword)
}
