package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/users/roles/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

func RoleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRoleController(db)

	roles := api.Group("/roles",
		authmw.OnlyRoles(constants.RoleErrorAdmin("role"), constants.AdminOnly...))
	roles.Post("/", ctrl.CreateRole)
	roles.Get("/", ctrl.GetAllRoles)
	roles.Get("/:id", ctrl.GetRoleByID)
	roles.Patch("/:id", ctrl.UpdateRole)
	roles.Delete("/:id", ctrl.DeleteRole)
}
