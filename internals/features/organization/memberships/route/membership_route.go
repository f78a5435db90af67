package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/organization/memberships/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// MembershipUserRoutes: struktur kepengurusan bisa dilihat semua anggota login.
func MembershipUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMembershipController(db)

	memberships := api.Group("/memberships")
	memberships.Get("/", ctrl.GetAllMemberships)
	memberships.Get("/:id", ctrl.GetMembershipByID)
}

func MembershipAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMembershipController(db)

	memberships := api.Group("/memberships",
		authmw.OnlyRoles(constants.RoleErrorAdmin("kepengurusan"), constants.AdminOnly...))
	memberships.Post("/", ctrl.CreateMembership)
	memberships.Patch("/:id", ctrl.UpdateMembership)
	memberships.Delete("/:id", ctrl.DeleteMembership)
}
