package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/activities/attendance_tokens/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// AttendanceTokenRoutes hanya untuk pengurus/admin; anggota cukup
// scan token lewat endpoint check-in.
func AttendanceTokenRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceTokenController(db)

	tokens := api.Group("/attendance-tokens",
		authmw.OnlyRoles(constants.RoleErrorPengurus("token absensi"), constants.PengurusAndAbove...))
	tokens.Post("/", ctrl.CreateToken)
	tokens.Post("/:id/regenerate", ctrl.RegenerateQR)
	tokens.Get("/by-event/:event_id", ctrl.GetTokensByEvent)
	tokens.Patch("/:id", ctrl.UpdateToken)
	tokens.Delete("/:id", ctrl.DeleteToken)
}
