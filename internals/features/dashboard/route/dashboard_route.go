package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/dashboard/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	api.Get("/dashboard",
		authmw.OnlyRoles(constants.RoleErrorPengurus("dashboard"), constants.PengurusAndAbove...),
		ctrl.GetSummary)
}
